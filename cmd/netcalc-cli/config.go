package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/csdt/netcalc/version"
	"github.com/csdt/netcalc/wire"
)

var (
	defaultServer         = "localhost:31337"
	defaultTimeout uint64 = 30
)

type configFlags struct {
	Server      string `short:"s" long:"server" description:"Server to connect to"`
	Timeout     uint64 `short:"t" long:"timeout" description:"Timeout for the request (in seconds)"`
	Proxy       string `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser   string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass   string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	Op       wire.Opcode
	OperandA int64
	OperandB int64
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		Server:  defaultServer,
		Timeout: defaultTimeout,
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "netcalc-cli [OPTIONS] OPERATION OPERAND_A OPERAND_B\n\n" +
		"Operations: add, subtract, multiply, divide, modulo, shiftleft, shiftright, and, or, xor"
	remainingArgs, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	if len(remainingArgs) != 3 {
		return nil, errors.New("An operation and exactly two operands must be specified")
	}

	op, ok := wire.OpcodeFromString(strings.ToLower(remainingArgs[0]))
	if !ok {
		return nil, errors.Errorf("Unknown operation '%s'", remainingArgs[0])
	}
	cfg.Op = op

	operandA, err := strconv.ParseInt(remainingArgs[1], 10, 64)
	if err != nil {
		return nil, errors.Errorf("Operand '%s' is not a 64-bit integer", remainingArgs[1])
	}
	cfg.OperandA = operandA

	operandB, err := strconv.ParseInt(remainingArgs[2], 10, 64)
	if err != nil {
		return nil, errors.Errorf("Operand '%s' is not a 64-bit integer", remainingArgs[2])
	}
	cfg.OperandB = operandB

	return cfg, nil
}
