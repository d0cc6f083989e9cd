// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultThreadCount is the worker pool size used by callers when the
	// -n option is not supplied. The parser itself never applies it.
	DefaultThreadCount int32 = 4

	// DefaultPort is the listen port used by callers when the -p option
	// is not supplied. The parser itself never applies it.
	DefaultPort = "31337"

	minThreadCount = 2
	minPortValue   = 1025
	maxPortValue   = 65535
	maxPortLength  = 5
)

// The accepted option characters. Options other than these three fail the
// parse with ErrUnrecognizedOption.
const (
	threadCountOpt = 'n'
	portOpt        = 'p'
	helpOpt        = 'h'
)

// Options is the validated server configuration produced from the command
// line. Once ParseOptions returns successfully the record is complete and
// callers treat it as read-only.
//
// The Set fields report whether the corresponding option appeared on the
// command line. Defaults are deliberately left to the caller so that the
// record always reflects exactly what the operator asked for.
type Options struct {
	ThreadCount    int32
	ThreadCountSet bool
	Port           string
	PortSet        bool
}

// errWriter is the stream parse failures and the help menu are written to.
// It is a package variable so tests can capture the output.
var errWriter io.Writer = os.Stderr

// ParseOptions scans the given argument vector, whose first element must be
// the program name, and fills in the options record. It recognizes exactly
// three options:
//
//	-n NUM    worker pool size, an integer no less than 2
//	-p PORT   listen port, an integer between 1025 and 65535 whose
//	          original text is kept and may be at most 5 characters
//	-h        render the help menu
//
// Scanning follows getopt(3): option values may be attached (-n4) or in the
// following argument (-n 4), options may cluster (-hn), "--" ends option
// scanning, and positional arguments are collected while scanning continues.
// Positional arguments are not accepted; any leftovers fail the parse.
//
// The first failure aborts the scan, and on every failure path the one-line
// cause (except for -h, which has none) followed by the full help menu is
// written to the error stream before the error is returned. The options
// record is only written to on success, so a failed parse never leaves a
// partially filled record behind. ParseOptions never terminates the process.
func ParseOptions(argv []string, options *Options) error {
	parsed, err := parseOptions(argv, options)
	if err != nil {
		if !isHelpRequested(err) {
			fmt.Fprintln(errWriter, err)
		}
		writeUsage(errWriter)
		return err
	}
	*options = parsed
	return nil
}

// parseOptions checks the parser inputs and folds the argument vector into a
// fresh record.
func parseOptions(argv []string, options *Options) (Options, error) {
	if len(argv) == 0 || options == nil {
		return Options{}, optionError(ErrNullInput,
			"No argument vector or no options record to parse into")
	}
	return parseArguments(argv[1:])
}

// parseArguments scans the arguments that follow the program name left to
// right and accumulates validated values into an Options record. It returns
// the record only if every argument was consumed without a failure.
func parseArguments(args []string) (Options, error) {
	opts := Options{}
	var extras []string

	endOfOptions := false
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" && !endOfOptions {
			endOfOptions = true
			continue
		}
		if endOfOptions || arg == "-" || !strings.HasPrefix(arg, "-") {
			extras = append(extras, arg)
			continue
		}

		// The argument is an option cluster: one dash followed by one or
		// more option characters, possibly ending in an attached value.
		cluster := arg[1:]
	clusterScan:
		for j := 0; j < len(cluster); j++ {
			opt := cluster[j]
			switch opt {
			case helpOpt:
				return Options{}, optionError(ErrHelpRequested, "Help requested")

			case threadCountOpt, portOpt:
				// The value is the rest of the cluster when attached,
				// otherwise the next argument, consumed blindly even if
				// it starts with a dash, the way getopt does.
				value := cluster[j+1:]
				if value == "" {
					i++
					if i >= len(args) {
						return Options{}, optionError(ErrMissingOptionArgument,
							invalidOptionMessage(opt))
					}
					value = args[i]
				}

				var err error
				if opt == threadCountOpt {
					opts, err = opts.setThreadCount(value)
				} else {
					opts, err = opts.setPort(value)
				}
				if err != nil {
					return Options{}, err
				}
				break clusterScan

			default:
				return Options{}, optionError(ErrUnrecognizedOption,
					invalidOptionMessage(opt))
			}
		}
	}

	if len(extras) > 0 {
		return Options{}, optionError(ErrExtraArguments, extraArgumentsMessage(extras))
	}
	return opts, nil
}

// setThreadCount validates a -n argument and returns a copy of the record
// with the thread count filled in.
func (opts Options) setThreadCount(arg string) (Options, error) {
	if opts.ThreadCountSet {
		return Options{}, optionError(ErrDuplicateFlag,
			"The -n option may not be specified more than once")
	}
	threadCount, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return Options{}, optionError(ErrConversionFailure,
			fmt.Sprintf("The -n option must be a valid integer -- parsed [%s]", arg))
	}
	if threadCount < minThreadCount {
		return Options{}, optionError(ErrOutOfRange,
			fmt.Sprintf("The -n option may not be less than %d -- parsed [%d]",
				minThreadCount, threadCount))
	}
	opts.ThreadCount = int32(threadCount)
	opts.ThreadCountSet = true
	return opts, nil
}

// setPort validates a -p argument and returns a copy of the record with the
// port filled in. The original text of the argument is what gets stored;
// the numeric value is only used for validation. Length is checked before
// the numeric range so oversized input is rejected as such even when its
// numeric value would also be out of range.
func (opts Options) setPort(arg string) (Options, error) {
	if opts.PortSet {
		return Options{}, optionError(ErrDuplicateFlag,
			"The -p option may not be specified more than once")
	}
	if len(arg) > maxPortLength {
		return Options{}, optionError(ErrTooLong,
			fmt.Sprintf("The -p option may not be longer than %d characters -- parsed [%s]",
				maxPortLength, arg))
	}
	port, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return Options{}, optionError(ErrConversionFailure,
			fmt.Sprintf("The -p option must be a valid integer -- parsed [%s]", arg))
	}
	if port < minPortValue || port > maxPortValue {
		return Options{}, optionError(ErrOutOfRange,
			fmt.Sprintf("The -p option must be between %d and %d -- parsed [%d]",
				minPortValue, maxPortValue, port))
	}
	opts.Port = arg
	opts.PortSet = true
	return opts, nil
}

// isHelpRequested reports whether err is an OptionError carrying
// ErrHelpRequested.
func isHelpRequested(err error) bool {
	var optErr OptionError
	return errors.As(err, &optErr) && optErr.ErrorCode == ErrHelpRequested
}
