// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ProtocolVersion is the version of the netcalc wire protocol this package
// implements. Every request carries the version of the client that produced
// it; the server rejects versions it does not understand.
const ProtocolVersion uint8 = 1

// Opcode identifies the calculation a request asks the server to perform.
type Opcode uint8

// The supported calculation opcodes. Zero is deliberately unused so that an
// all-zero frame never decodes into a valid request.
const (
	OpAdd Opcode = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpShiftLeft
	OpShiftRight
	OpAnd
	OpOr
	OpXor
)

// opcodeStrings is a map of opcodes back to their protocol names for pretty
// printing and for parsing names given on client command lines.
var opcodeStrings = map[Opcode]string{
	OpAdd:        "add",
	OpSubtract:   "subtract",
	OpMultiply:   "multiply",
	OpDivide:     "divide",
	OpModulo:     "modulo",
	OpShiftLeft:  "shiftleft",
	OpShiftRight: "shiftright",
	OpAnd:        "and",
	OpOr:         "or",
	OpXor:        "xor",
}

// String returns the Opcode as a human-readable name.
func (op Opcode) String() string {
	if s, ok := opcodeStrings[op]; ok {
		return s
	}
	return fmt.Sprintf("unknown opcode (%d)", uint8(op))
}

// OpcodeFromString returns the opcode with the given protocol name. The ok
// return is false when the name is not a known opcode.
func OpcodeFromString(s string) (op Opcode, ok bool) {
	for op, name := range opcodeStrings {
		if name == s {
			return op, true
		}
	}
	return 0, false
}

// Status identifies the outcome of a calculation request.
type Status uint8

// The response status codes. A response carries a meaningful result only
// when its status is StatusOK.
const (
	StatusOK Status = iota
	StatusUnknownOpcode
	StatusDivideByZero
	StatusShiftRange
	StatusBadVersion
)

// statusStrings is a map of status codes back to their constant names for
// pretty printing.
var statusStrings = map[Status]string{
	StatusOK:            "StatusOK",
	StatusUnknownOpcode: "StatusUnknownOpcode",
	StatusDivideByZero:  "StatusDivideByZero",
	StatusShiftRange:    "StatusShiftRange",
	StatusBadVersion:    "StatusBadVersion",
}

// String returns the Status as a human-readable name.
func (s Status) String() string {
	if name, ok := statusStrings[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown status (%d)", uint8(s))
}

// IsEOF reports whether err is a plain end-of-file, which a client causes by
// closing its connection between frames. A frame cut inside a field surfaces
// as io.ErrUnexpectedEOF and is not a clean close. The deserializers wrap io
// errors with a stack, so the comparison goes through the cause chain.
func IsEOF(err error) bool {
	return errors.Cause(err) == io.EOF
}
