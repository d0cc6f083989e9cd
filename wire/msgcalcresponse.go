// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/csdt/netcalc/util/binaryserializer"
)

// CalcResponsePayload is the number of bytes a serialized calculation
// response occupies on the wire.
// Status 1 byte + Result 8 bytes.
const CalcResponsePayload = 9

// MsgCalcResponse represents the server's answer to a MsgCalcRequest.
type MsgCalcResponse struct {
	// Status reports whether the calculation was performed. Result is only
	// meaningful when Status is StatusOK; it is zero otherwise.
	Status Status

	// Result is the calculation output as little-endian two's complement.
	Result int64
}

// Deserialize decodes a calculation response from r into the receiver.
func (msg *MsgCalcResponse) Deserialize(r io.Reader) error {
	status, err := binaryserializer.Uint8(r)
	if err != nil {
		return err
	}
	result, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}

	msg.Status = Status(status)
	msg.Result = int64(result)
	return nil
}

// Serialize encodes the calculation response to w.
func (msg *MsgCalcResponse) Serialize(w io.Writer) error {
	err := binaryserializer.PutUint8(w, uint8(msg.Status))
	if err != nil {
		return err
	}
	return binaryserializer.PutUint64(w, uint64(msg.Result))
}

// NewMsgCalcResponse returns a new calculation response with the given
// status and result.
func NewMsgCalcResponse(status Status, result int64) *MsgCalcResponse {
	return &MsgCalcResponse{
		Status: status,
		Result: result,
	}
}
