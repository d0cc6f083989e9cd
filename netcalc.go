// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/csdt/netcalc/config"
	"github.com/csdt/netcalc/logger"
	"github.com/csdt/netcalc/server"
	"github.com/csdt/netcalc/signal"
	"github.com/csdt/netcalc/threadpool"
	"github.com/csdt/netcalc/util"
	"github.com/csdt/netcalc/util/panics"
	"github.com/csdt/netcalc/version"
)

const (
	defaultLogFilename    = "netcalc.log"
	defaultErrLogFilename = "netcalc_err.log"
	defaultLogLevel       = "info"
)

var (
	// netcalcHomeDir is where netcalc keeps its runtime files, most
	// notably the logs.
	netcalcHomeDir = util.AppDataDir("netcalc", false)
	defaultLogDir  = filepath.Join(netcalcHomeDir, "logs")
)

// netcalcMain is the real main function for netcalc. It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func netcalcMain() error {
	defer panics.HandlePanic(log, nil)

	// Resolve the command line before touching anything else. On failure
	// the resolver has already written the cause and the help menu to
	// stderr, so all that is left to do is exit with a failure code.
	options := &config.Options{}
	err := config.ParseOptions(os.Args, options)
	if err != nil {
		return err
	}

	// The resolver leaves omitted options unset. Defaults are applied
	// here, at the point of use.
	if !options.ThreadCountSet {
		options.ThreadCount = config.DefaultThreadCount
	}
	if !options.PortSet {
		options.Port = config.DefaultPort
	}

	logger.InitLog(filepath.Join(defaultLogDir, defaultLogFilename),
		filepath.Join(defaultLogDir, defaultErrLogFilename))
	err = logger.SetLogLevels(defaultLogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	// Get a channel that will be closed when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or
	// another subsystem.
	interrupt := signal.InterruptListener()
	defer log.Info("Shutdown complete")

	// Show version at startup.
	log.Infof("Version %s", version.Version())
	log.Infof("Using %d worker threads, listening on port %s",
		options.ThreadCount, options.Port)

	pool := threadpool.New(options.ThreadCount)
	pool.Start()
	defer pool.Stop()

	srv := server.New(&server.Config{
		Port:       options.Port,
		ThreadPool: pool,
	})
	err = srv.Start()
	if err != nil {
		log.Errorf("Can't start server: %s", err)
		return err
	}
	defer func() {
		srv.Stop()
		srv.WaitForShutdown()
	}()

	// Wait until the interrupt signal is received from an OS signal or
	// shutdown is requested through one of the subsystems.
	<-interrupt
	return nil
}
