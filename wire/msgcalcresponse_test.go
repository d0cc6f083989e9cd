// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestCalcResponseWire tests the MsgCalcResponse wire encode and decode.
func TestCalcResponseWire(t *testing.T) {
	tests := []struct {
		in  *MsgCalcResponse // Message to encode
		buf []byte           // Wire encoding
	}{
		{
			NewMsgCalcResponse(StatusOK, 5),
			[]byte{
				0x00, // StatusOK
				0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Result 5
			},
		},
		{
			NewMsgCalcResponse(StatusOK, -5),
			[]byte{
				0x00, // StatusOK
				0xfb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // Result -5
			},
		},
		{
			NewMsgCalcResponse(StatusDivideByZero, 0),
			[]byte{
				0x02, // StatusDivideByZero
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Result 0
			},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Encode the message to wire format.
		var buf bytes.Buffer
		err := test.in.Serialize(&buf)
		if err != nil {
			t.Errorf("Serialize #%d error %v", i, err)
			continue
		}
		if len(buf.Bytes()) != CalcResponsePayload {
			t.Errorf("Serialize #%d wrong frame size - got %d, want %d",
				i, len(buf.Bytes()), CalcResponsePayload)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("Serialize #%d\n got: %s want: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}

		// Decode the message from wire format.
		var msg MsgCalcResponse
		rbuf := bytes.NewReader(test.buf)
		err = msg.Deserialize(rbuf)
		if err != nil {
			t.Errorf("Deserialize #%d error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(&msg, test.in) {
			t.Errorf("Deserialize #%d\n got: %s want: %s", i,
				spew.Sdump(&msg), spew.Sdump(test.in))
			continue
		}
	}
}

// TestCalcResponseWireErrors tests that truncated frames surface io errors.
func TestCalcResponseWireErrors(t *testing.T) {
	fullFrame := []byte{
		0x00,
		0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	for size := 0; size < len(fullFrame); size++ {
		var msg MsgCalcResponse
		err := msg.Deserialize(bytes.NewReader(fullFrame[:size]))
		if err == nil {
			t.Errorf("Deserialize with %d bytes: expected error, got none", size)
		}
	}
}
