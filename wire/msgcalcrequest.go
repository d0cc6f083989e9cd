// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/csdt/netcalc/util/binaryserializer"
)

// CalcRequestPayload is the number of bytes a serialized calculation request
// occupies on the wire.
// Version 1 byte + Opcode 1 byte + OperandA 8 bytes + OperandB 8 bytes.
const CalcRequestPayload = 18

// MsgCalcRequest represents a netcalc calculation request. A client sends
// one frame per calculation and reads one MsgCalcResponse frame back.
type MsgCalcRequest struct {
	// Version of the protocol the client speaks. This is not validated at
	// decode time; the server answers unsupported versions with
	// StatusBadVersion.
	Version uint8

	// Op selects the calculation to perform on the operands.
	Op Opcode

	// OperandA and OperandB are the calculation inputs. For the shift
	// opcodes OperandA is the value and OperandB is the shift count.
	OperandA int64
	OperandB int64
}

// Deserialize decodes a calculation request from r into the receiver. The
// operands travel as little-endian two's complement.
func (msg *MsgCalcRequest) Deserialize(r io.Reader) error {
	version, err := binaryserializer.Uint8(r)
	if err != nil {
		return err
	}
	opcode, err := binaryserializer.Uint8(r)
	if err != nil {
		return err
	}
	operandA, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}
	operandB, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}

	msg.Version = version
	msg.Op = Opcode(opcode)
	msg.OperandA = int64(operandA)
	msg.OperandB = int64(operandB)
	return nil
}

// Serialize encodes the calculation request to w.
func (msg *MsgCalcRequest) Serialize(w io.Writer) error {
	err := binaryserializer.PutUint8(w, msg.Version)
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint8(w, uint8(msg.Op))
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint64(w, uint64(msg.OperandA))
	if err != nil {
		return err
	}
	return binaryserializer.PutUint64(w, uint64(msg.OperandB))
}

// NewMsgCalcRequest returns a new calculation request for the given opcode
// and operands, stamped with the protocol version this package implements.
func NewMsgCalcRequest(op Opcode, operandA, operandB int64) *MsgCalcRequest {
	return &MsgCalcRequest{
		Version:  ProtocolVersion,
		Op:       op,
		OperandA: operandA,
		OperandB: operandB,
	}
}
