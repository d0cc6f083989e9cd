/*
Copyright (c) 2013-2018 The btcsuite developers
Copyright (c) 2015-2016 The Decred developers
Use of this source code is governed by an ISC
license that can be found in the LICENSE file.

Netcalc is a multithreaded network calculation server written in Go.

It listens for TCP connections and answers fixed-size binary calculation
requests, one response per request, until the client disconnects. Every
connection is served by a worker from a fixed-size thread pool, so the -n
option bounds how many clients are served concurrently.

Usage:

	netcalc [options]

The server recognizes the following options:

	-p PORT   Port to listen on; (MIN: 1025, MAX: 65535) defaults to 31337.
	-n NUM    Number of threads in the pool; (MIN: 2) defaults to 4.
	-h        Print this help menu and exit.

Option scanning follows getopt(3): values may be attached to their option
(-n8) or given as the next argument (-n 8), options may cluster, and "--"
ends option scanning. There is no configuration file; the command line is
the only configuration source.

Logs are written to the logs directory inside the netcalc home directory,
~/.netcalc on POSIX-style operating systems.
*/
package main
