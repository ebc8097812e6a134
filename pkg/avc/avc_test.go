package avc

import (
	"bytes"
	"errors"
	"testing"
)

func TestSubunitAddrEncoding(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want uint8
	}{
		{"audio 0", SubunitAddr(SubunitAudio, 0), 0x08},
		{"audio 1", SubunitAddr(SubunitAudio, 1), 0x09},
		{"audio 2", SubunitAddr(SubunitAudio, 2), 0x0a},
		{"music 0", SubunitAddr(SubunitMusic, 0), 0x60},
		{"music 3", SubunitAddr(SubunitMusic, 3), 0x63},
		{"id truncated to 3 bits", SubunitAddr(SubunitAudio, 0x0f), 0x0f},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint8(tt.addr) != tt.want {
				t.Errorf("encoded 0x%02x, want 0x%02x", uint8(tt.addr), tt.want)
			}
		})
	}
}

func TestAddrFields(t *testing.T) {
	if !AddrUnit.IsUnit() {
		t.Error("AddrUnit.IsUnit() = false")
	}

	a := Addr(0x63)
	if a.IsUnit() {
		t.Error("0x63 should not be the unit address")
	}
	if a.SubunitType() != SubunitMusic {
		t.Errorf("SubunitType() = %v, want MUSIC", a.SubunitType())
	}
	if a.SubunitID() != 3 {
		t.Errorf("SubunitID() = %d, want 3", a.SubunitID())
	}

	// A reserved subunit type survives the round trip.
	a = Addr(0x87)
	if a.SubunitType() != SubunitType(0x10) {
		t.Errorf("SubunitType() = 0x%02x, want 0x10", uint8(a.SubunitType()))
	}
	if a.SubunitID() != 7 {
		t.Errorf("SubunitID() = %d, want 7", a.SubunitID())
	}
}

func TestRespCodeValidity(t *testing.T) {
	valid := []RespCode{
		RespNotImplemented, RespAccepted, RespRejected, RespInTransition,
		RespImplementedStable, RespChanged, RespInterim,
	}
	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("RespCode 0x%02x should be valid", uint8(code))
		}
	}
	for _, code := range []RespCode{0x00, 0x07, 0x0e} {
		if code.IsValid() {
			t.Errorf("RespCode 0x%02x should be invalid", uint8(code))
		}
	}
}

func TestComposeCommandFrame(t *testing.T) {
	frame := ComposeCommandFrame(CmdStatus, AddrUnit, 0x30, []byte{0x07, 0xff, 0xff, 0xff, 0xff})
	want := []byte{0x01, 0xff, 0x30, 0x07, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = % 02x, want % 02x", frame, want)
	}

	// Empty operands yield a bare header.
	frame = ComposeCommandFrame(CmdControl, AudioSubunit0, 0x00, nil)
	want = []byte{0x00, 0x08, 0x00}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = % 02x, want % 02x", frame, want)
	}
}

func TestParseResponseFrame(t *testing.T) {
	resp, err := ParseResponseFrame([]byte{0x0c, 0xff, 0x30, 0xde, 0xad})
	if err != nil {
		t.Fatalf("ParseResponseFrame failed: %v", err)
	}
	if resp.Code != RespImplementedStable {
		t.Errorf("Code = %v, want IMPLEMENTED_STABLE", resp.Code)
	}
	if resp.Addr != AddrUnit {
		t.Errorf("Addr = %v, want UNIT", resp.Addr)
	}
	if resp.Opcode != 0x30 {
		t.Errorf("Opcode = 0x%02x, want 0x30", resp.Opcode)
	}
	if !bytes.Equal(resp.Operands, []byte{0xde, 0xad}) {
		t.Errorf("Operands = % 02x", resp.Operands)
	}

	// The CTS bits in byte 0 are masked off.
	resp, err = ParseResponseFrame([]byte{0xf9, 0xff, 0x18})
	if err != nil {
		t.Fatalf("ParseResponseFrame failed: %v", err)
	}
	if resp.Code != RespAccepted {
		t.Errorf("Code = %v, want ACCEPTED", resp.Code)
	}
}

func TestParseResponseFrameMalformed(t *testing.T) {
	for _, frame := range [][]byte{nil, {0x0c}, {0x0c, 0xff}} {
		if _, err := ParseResponseFrame(frame); !errors.Is(err, ErrMalformedFrame) {
			t.Errorf("frame % 02x: err = %v, want ErrMalformedFrame", frame, err)
		}
	}

	// Undefined response code.
	if _, err := ParseResponseFrame([]byte{0x0e, 0xff, 0x30}); !errors.Is(err, ErrMalformedFrame) {
		t.Errorf("reserved code: err = %v, want ErrMalformedFrame", err)
	}
}

func TestResponseMatches(t *testing.T) {
	resp := Response{Code: RespImplementedStable, Addr: AddrUnit, Opcode: 0x30}
	if !resp.Matches(AddrUnit, 0x30) {
		t.Error("response should match its own address and opcode")
	}
	if resp.Matches(AudioSubunit0, 0x30) {
		t.Error("response should not match a different address")
	}
	if resp.Matches(AddrUnit, 0x31) {
		t.Error("response should not match a different opcode")
	}
}
