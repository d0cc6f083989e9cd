package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/btcsuite/go-socks/socks"

	"github.com/csdt/netcalc/wire"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		printErrorAndExit(fmt.Sprintf("Error parsing command-line arguments: %s", err))
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	conn, err := dialServer(cfg, timeout)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("Error connecting to %s: %s", cfg.Server, err))
	}
	defer conn.Close()

	// The whole exchange shares one deadline.
	err = conn.SetDeadline(time.Now().Add(timeout))
	if err != nil {
		printErrorAndExit(fmt.Sprintf("Error setting the exchange deadline: %s", err))
	}

	request := wire.NewMsgCalcRequest(cfg.Op, cfg.OperandA, cfg.OperandB)
	err = request.Serialize(conn)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("Error sending the request: %s", err))
	}

	response := &wire.MsgCalcResponse{}
	err = response.Deserialize(conn)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("Error reading the response: %s", err))
	}

	if response.Status != wire.StatusOK {
		printErrorAndExit(fmt.Sprintf("Server rejected the request: %s", response.Status))
	}
	fmt.Println(response.Result)
}

// dialServer connects to the configured server either directly or through a
// SOCKS5 proxy when one is configured.
func dialServer(cfg *configFlags, timeout time.Duration) (net.Conn, error) {
	if cfg.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     cfg.Proxy,
			Username: cfg.ProxyUser,
			Password: cfg.ProxyPass,
		}
		return proxy.DialTimeout("tcp", cfg.Server, timeout)
	}
	return net.DialTimeout("tcp", cfg.Server, timeout)
}

func printErrorAndExit(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(1)
}
