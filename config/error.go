// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
)

// ErrorCode identifies a kind of option parsing error.
type ErrorCode int

// These constants are used to identify a specific OptionError.
const (
	// ErrNullInput indicates the parser was handed a nil or empty argument
	// vector, or no options record to parse into.
	ErrNullInput ErrorCode = iota

	// ErrDuplicateFlag indicates an option was specified more than once on
	// the command line. Repeated options are never silently overwritten.
	ErrDuplicateFlag

	// ErrConversionFailure indicates an option argument that must be
	// numeric could not be converted to a number.
	ErrConversionFailure

	// ErrOutOfRange indicates a numeric option argument is outside the
	// range the option accepts.
	ErrOutOfRange

	// ErrTooLong indicates an option argument exceeds the maximum length
	// the option accepts.
	ErrTooLong

	// ErrUnrecognizedOption indicates an option character outside the
	// accepted set was encountered.
	ErrUnrecognizedOption

	// ErrMissingOptionArgument indicates an option that requires an
	// argument appeared as the last token on the command line.
	ErrMissingOptionArgument

	// ErrExtraArguments indicates positional arguments were left over
	// after the option scan completed.
	ErrExtraArguments

	// ErrHelpRequested indicates the help option was encountered. Help is
	// always terminal: the parse fails after the usage text is rendered,
	// no matter what other options were seen first.
	ErrHelpRequested
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrNullInput:             "ErrNullInput",
	ErrDuplicateFlag:         "ErrDuplicateFlag",
	ErrConversionFailure:     "ErrConversionFailure",
	ErrOutOfRange:            "ErrOutOfRange",
	ErrTooLong:               "ErrTooLong",
	ErrUnrecognizedOption:    "ErrUnrecognizedOption",
	ErrMissingOptionArgument: "ErrMissingOptionArgument",
	ErrExtraArguments:        "ErrExtraArguments",
	ErrHelpRequested:         "ErrHelpRequested",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// OptionError identifies an option parsing failure. The caller can use
// errors.As to determine if a failure was due to option parsing and access
// the ErrorCode field to ascertain the specific reason for the failure.
type OptionError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e OptionError) Error() string {
	return e.Description
}

// optionError creates an OptionError given a set of arguments.
func optionError(c ErrorCode, desc string) OptionError {
	return OptionError{ErrorCode: c, Description: desc}
}
