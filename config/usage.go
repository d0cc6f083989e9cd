// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"strings"
)

// usageText is the full help menu. It is rendered on every parse failure,
// including the help option itself, so an operator always sees the accepted
// options next to whatever went wrong.
const usageText = `NetCalc - a multithreaded network calculation server
----------------------------------------------------
Usage: netcalc [options]
Options:
  -p PORT   Port to listen on; (MIN: 1025, MAX: 65535) defaults to 31337.
  -n NUM    Number of threads in the pool; (MIN: 2) defaults to 4.
  -h        Print this help menu and exit.

Description:
  NetCalc is a server application that performs a variety of operations.
  It listens for incoming connections over network sockets, enqueues the data,
  and processes the work in a queue with a threadpool.

Examples:
  netcalc -p 8080 -n 8
  netcalc -h

For more information, see the documentation.
`

// writeUsage renders the help menu to w.
func writeUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// invalidOptionMessage builds the one-line diagnostic for a scan failure the
// way getopt(3) reports it: options that take a value but appeared without
// one get the requires-argument form, any other character gets the
// unknown-option form.
func invalidOptionMessage(opt byte) string {
	if opt == threadCountOpt || opt == portOpt {
		return fmt.Sprintf("Option '-%c' requires an argument.", opt)
	}
	return fmt.Sprintf("Unknown option '-%c'.", opt)
}

// extraArgumentsMessage builds the one-line diagnostic listing every
// positional argument left over after the option scan.
func extraArgumentsMessage(extras []string) string {
	return "Invalid arguments encountered: " + strings.Join(extras, " ")
}
