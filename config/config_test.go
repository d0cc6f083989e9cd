// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestParseOptionsValid tests that well-formed command lines produce exactly
// the expected record and write nothing to the error stream.
func TestParseOptionsValid(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Options
	}{
		{
			name: "no options",
			argv: []string{"netcalc"},
			want: Options{},
		},
		{
			name: "thread count in next argument",
			argv: []string{"netcalc", "-n", "8"},
			want: Options{ThreadCount: 8, ThreadCountSet: true},
		},
		{
			name: "thread count attached",
			argv: []string{"netcalc", "-n8"},
			want: Options{ThreadCount: 8, ThreadCountSet: true},
		},
		{
			name: "thread count at minimum",
			argv: []string{"netcalc", "-n", "2"},
			want: Options{ThreadCount: 2, ThreadCountSet: true},
		},
		{
			name: "thread count has no upper bound",
			argv: []string{"netcalc", "-n", "2147483647"},
			want: Options{ThreadCount: 2147483647, ThreadCountSet: true},
		},
		{
			name: "port in next argument",
			argv: []string{"netcalc", "-p", "31337"},
			want: Options{Port: "31337", PortSet: true},
		},
		{
			name: "port attached",
			argv: []string{"netcalc", "-p8080"},
			want: Options{Port: "8080", PortSet: true},
		},
		{
			name: "port at lower bound",
			argv: []string{"netcalc", "-p", "1025"},
			want: Options{Port: "1025", PortSet: true},
		},
		{
			name: "port at upper bound",
			argv: []string{"netcalc", "-p", "65535"},
			want: Options{Port: "65535", PortSet: true},
		},
		{
			name: "port keeps its original text",
			argv: []string{"netcalc", "-p", "08080"},
			want: Options{Port: "08080", PortSet: true},
		},
		{
			name: "both options",
			argv: []string{"netcalc", "-n", "8", "-p", "8080"},
			want: Options{ThreadCount: 8, ThreadCountSet: true, Port: "8080", PortSet: true},
		},
		{
			name: "both options reversed",
			argv: []string{"netcalc", "-p", "8080", "-n", "8"},
			want: Options{ThreadCount: 8, ThreadCountSet: true, Port: "8080", PortSet: true},
		},
	}

	for _, test := range tests {
		var output bytes.Buffer
		errWriter = &output

		opts := Options{}
		err := ParseOptions(test.argv, &opts)

		errWriter = os.Stderr
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		if !reflect.DeepEqual(opts, test.want) {
			t.Errorf("%s: wrong record - got: %v want: %v", test.name,
				spew.Sdump(opts), spew.Sdump(test.want))
			continue
		}
		if output.Len() != 0 {
			t.Errorf("%s: successful parse wrote to the error stream: %q",
				test.name, output.String())
		}
	}
}

// TestParseOptionsErrors tests the error code every malformed command line
// produces, that the first failure wins, and that a failed parse leaves the
// record untouched.
func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want ErrorCode
	}{
		{
			name: "nil argument vector",
			argv: nil,
			want: ErrNullInput,
		},
		{
			name: "empty argument vector",
			argv: []string{},
			want: ErrNullInput,
		},
		{
			name: "help",
			argv: []string{"netcalc", "-h"},
			want: ErrHelpRequested,
		},
		{
			name: "help after a valid option is still terminal",
			argv: []string{"netcalc", "-n", "4", "-h"},
			want: ErrHelpRequested,
		},
		{
			name: "help first in a cluster",
			argv: []string{"netcalc", "-hn"},
			want: ErrHelpRequested,
		},
		{
			name: "clustered option consumes the rest as its value",
			argv: []string{"netcalc", "-nh"},
			want: ErrConversionFailure,
		},
		{
			name: "thread count missing argument",
			argv: []string{"netcalc", "-n"},
			want: ErrMissingOptionArgument,
		},
		{
			name: "port missing argument",
			argv: []string{"netcalc", "-p"},
			want: ErrMissingOptionArgument,
		},
		{
			name: "thread count below minimum",
			argv: []string{"netcalc", "-n", "1"},
			want: ErrOutOfRange,
		},
		{
			name: "thread count zero",
			argv: []string{"netcalc", "-n", "0"},
			want: ErrOutOfRange,
		},
		{
			name: "thread count negative",
			argv: []string{"netcalc", "-n", "-5"},
			want: ErrOutOfRange,
		},
		{
			name: "thread count not a number",
			argv: []string{"netcalc", "-n", "abc"},
			want: ErrConversionFailure,
		},
		{
			name: "thread count overflows",
			argv: []string{"netcalc", "-n", "2147483648"},
			want: ErrConversionFailure,
		},
		{
			name: "duplicate thread count",
			argv: []string{"netcalc", "-n", "4", "-n", "8"},
			want: ErrDuplicateFlag,
		},
		{
			name: "duplicate thread count with equal values",
			argv: []string{"netcalc", "-n", "4", "-n", "4"},
			want: ErrDuplicateFlag,
		},
		{
			name: "port below range",
			argv: []string{"netcalc", "-p", "1024"},
			want: ErrOutOfRange,
		},
		{
			name: "port above range",
			argv: []string{"netcalc", "-p", "65536"},
			want: ErrOutOfRange,
		},
		{
			name: "port negative",
			argv: []string{"netcalc", "-p", "-1"},
			want: ErrOutOfRange,
		},
		{
			name: "port too long beats out of range",
			argv: []string{"netcalc", "-p", "123456"},
			want: ErrTooLong,
		},
		{
			name: "port not a number",
			argv: []string{"netcalc", "-p", "abcd"},
			want: ErrConversionFailure,
		},
		{
			name: "duplicate port",
			argv: []string{"netcalc", "-p", "8080", "-p", "9090"},
			want: ErrDuplicateFlag,
		},
		{
			name: "unknown option",
			argv: []string{"netcalc", "-z"},
			want: ErrUnrecognizedOption,
		},
		{
			name: "long options are not options",
			argv: []string{"netcalc", "--port", "8080"},
			want: ErrUnrecognizedOption,
		},
		{
			name: "value option consumes a following dash argument",
			argv: []string{"netcalc", "-n", "-p"},
			want: ErrConversionFailure,
		},
		{
			name: "positional argument",
			argv: []string{"netcalc", "extra"},
			want: ErrExtraArguments,
		},
		{
			name: "positional arguments after valid options",
			argv: []string{"netcalc", "-n", "4", "leftover1", "leftover2"},
			want: ErrExtraArguments,
		},
		{
			name: "options after the terminator are positional",
			argv: []string{"netcalc", "--", "-n", "4"},
			want: ErrExtraArguments,
		},
		{
			name: "lone dash is positional",
			argv: []string{"netcalc", "-"},
			want: ErrExtraArguments,
		},
		{
			name: "first failure wins over a later unknown option",
			argv: []string{"netcalc", "-n", "1", "-z"},
			want: ErrOutOfRange,
		},
		{
			name: "first failure wins when the unknown option is first",
			argv: []string{"netcalc", "-z", "-n", "1"},
			want: ErrUnrecognizedOption,
		},
	}

	for _, test := range tests {
		var output bytes.Buffer
		errWriter = &output

		opts := Options{}
		err := ParseOptions(test.argv, &opts)

		errWriter = os.Stderr
		if err == nil {
			t.Errorf("%s: expected error code %v, got success", test.name, test.want)
			continue
		}
		var optErr OptionError
		if !errors.As(err, &optErr) {
			t.Errorf("%s: error %v is not an OptionError", test.name, err)
			continue
		}
		if optErr.ErrorCode != test.want {
			t.Errorf("%s: wrong error code - got %v, want %v (%s)",
				test.name, optErr.ErrorCode, test.want, err)
			continue
		}
		if !reflect.DeepEqual(opts, Options{}) {
			t.Errorf("%s: failed parse mutated the record: %s",
				test.name, spew.Sdump(opts))
		}
	}
}

// TestParseOptionsNilRecord tests that a missing options record fails the
// parse before anything is scanned.
func TestParseOptionsNilRecord(t *testing.T) {
	var output bytes.Buffer
	errWriter = &output
	defer func() { errWriter = os.Stderr }()

	err := ParseOptions([]string{"netcalc", "-n", "4"}, nil)
	var optErr OptionError
	if !errors.As(err, &optErr) || optErr.ErrorCode != ErrNullInput {
		t.Fatalf("nil record: got %v, want %v", err, ErrNullInput)
	}
	if !strings.Contains(output.String(), usageText) {
		t.Errorf("nil record: help menu was not rendered")
	}
}

// TestParseOptionsOutput tests what the parser writes to the error stream on
// each kind of failure.
func TestParseOptionsOutput(t *testing.T) {
	tests := []struct {
		name      string
		argv      []string
		wantCause string
	}{
		{
			name:      "out of range cause line",
			argv:      []string{"netcalc", "-n", "1"},
			wantCause: "The -n option may not be less than 2 -- parsed [1]",
		},
		{
			name:      "missing argument cause line",
			argv:      []string{"netcalc", "-n"},
			wantCause: "Option '-n' requires an argument.",
		},
		{
			name:      "unknown option cause line",
			argv:      []string{"netcalc", "-z"},
			wantCause: "Unknown option '-z'.",
		},
		{
			name:      "extra arguments cause line",
			argv:      []string{"netcalc", "foo", "bar"},
			wantCause: "Invalid arguments encountered: foo bar",
		},
		{
			name:      "too long cause line",
			argv:      []string{"netcalc", "-p", "123456"},
			wantCause: "The -p option may not be longer than 5 characters -- parsed [123456]",
		},
	}

	for _, test := range tests {
		var output bytes.Buffer
		errWriter = &output

		opts := Options{}
		err := ParseOptions(test.argv, &opts)

		errWriter = os.Stderr
		if err == nil {
			t.Errorf("%s: expected a parse failure", test.name)
			continue
		}
		got := output.String()
		causeIdx := strings.Index(got, test.wantCause)
		usageIdx := strings.Index(got, usageText)
		if causeIdx == -1 {
			t.Errorf("%s: cause line %q missing from output %q",
				test.name, test.wantCause, got)
			continue
		}
		if usageIdx == -1 {
			t.Errorf("%s: help menu missing from output %q", test.name, got)
			continue
		}
		if causeIdx > usageIdx {
			t.Errorf("%s: cause line rendered after the help menu", test.name)
		}
	}
}

// TestParseOptionsHelpOutput tests that the help path renders the help menu
// alone, with no cause line.
func TestParseOptionsHelpOutput(t *testing.T) {
	var output bytes.Buffer
	errWriter = &output
	defer func() { errWriter = os.Stderr }()

	opts := Options{}
	err := ParseOptions([]string{"netcalc", "-h"}, &opts)
	if err == nil {
		t.Fatal("expected the help path to fail the parse")
	}
	if output.String() != usageText {
		t.Errorf("help output is not exactly the help menu - got %q", output.String())
	}
}

// TestParseOptionsIdempotent tests that parsing the same argument vector
// into two fresh records yields identical results.
func TestParseOptionsIdempotent(t *testing.T) {
	argv := []string{"netcalc", "-n", "8", "-p", "8080"}

	first := Options{}
	if err := ParseOptions(argv, &first); err != nil {
		t.Fatalf("first parse: unexpected error: %s", err)
	}
	second := Options{}
	if err := ParseOptions(argv, &second); err != nil {
		t.Fatalf("second parse: unexpected error: %s", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parses disagree - first: %s second: %s",
			spew.Sdump(first), spew.Sdump(second))
	}
}
