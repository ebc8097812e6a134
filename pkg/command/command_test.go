package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

func TestUnitInfoOperands(t *testing.T) {
	op := NewUnitInfo()
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0x07, 0xde, 0xad, 0xbe, 0xef}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.UnitType != avc.SubunitType(0x1b) {
		t.Errorf("UnitType = 0x%02x, want 0x1b", uint8(op.UnitType))
	}
	if op.UnitID != 0x06 {
		t.Errorf("UnitID = 0x%02x, want 0x06", op.UnitID)
	}
	if op.CompanyID != [3]byte{0xad, 0xbe, 0xef} {
		t.Errorf("CompanyID = % 02x", op.CompanyID)
	}

	operands, err := op.BuildStatusOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildStatusOperands failed: %v", err)
	}
	if !bytes.Equal(operands, []byte{0x07, 0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("operands = % 02x", operands)
	}

	if _, err := op.BuildStatusOperands(avc.AudioSubunit0); !errors.Is(err, avc.ErrInvalidAddress) {
		t.Errorf("subunit address: err = %v, want ErrInvalidAddress", err)
	}
}

func TestSubunitInfoOperands(t *testing.T) {
	op := NewSubunitInfo(0, 0)
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0xde, 0xad, 0xbe, 0xef, 0x3a}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.Page != 0x05 || op.ExtensionCode != 0x06 {
		t.Errorf("Page = %d ExtensionCode = %d, want 5 and 6", op.Page, op.ExtensionCode)
	}
	want := []SubunitInfoEntry{
		{avc.SubunitType(0x15), 0x05},
		{avc.SubunitType(0x17), 0x06},
		{avc.SubunitType(0x1d), 0x07},
		{avc.SubunitCamera, 0x02},
	}
	if len(op.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(op.Entries), len(want))
	}
	for i, e := range want {
		if op.Entries[i] != e {
			t.Errorf("entry %d = %+v, want %+v", i, op.Entries[i], e)
		}
	}

	// 0xff slots are skipped.
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0x00, 0x08, 0xff, 0xff, 0xff}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if len(op.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(op.Entries))
	}
}

func TestVendorDependentRoundTrip(t *testing.T) {
	companyID := [3]byte{0x00, 0x01, 0x02}
	operands := []byte{0x00, 0x01, 0x02, 0xde, 0xad, 0xbe, 0xef}

	op := NewVendorDependent(companyID)
	if err := op.ParseStatusOperands(avc.AddrUnit, operands); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.CompanyID != companyID {
		t.Errorf("CompanyID = % 02x", op.CompanyID)
	}
	if !bytes.Equal(op.Data, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("Data = % 02x", op.Data)
	}

	built, err := op.BuildControlOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildControlOperands failed: %v", err)
	}
	if !bytes.Equal(built, operands) {
		t.Errorf("built = % 02x, want % 02x", built, operands)
	}

	// An empty payload cannot be serialized.
	empty := NewVendorDependent(companyID)
	if _, err := empty.BuildControlOperands(avc.AddrUnit); !errors.Is(err, avc.ErrInvalidOperands) {
		t.Errorf("empty payload: err = %v, want ErrInvalidOperands", err)
	}
}

func TestPlugInfoUnitIsocExt(t *testing.T) {
	var op PlugInfoUnitIsocExt
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0x00, 0xde, 0xad, 0xbe, 0xef}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.IsocInputPlugs != 0xde || op.IsocOutputPlugs != 0xad ||
		op.ExternalInputPlugs != 0xbe || op.ExternalOutputPlugs != 0xef {
		t.Errorf("parsed %+v", op)
	}

	operands, err := op.BuildStatusOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildStatusOperands failed: %v", err)
	}
	if !bytes.Equal(operands, []byte{0x00, 0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("operands = % 02x", operands)
	}

	// Wrong subfunction in the response.
	err = op.ParseStatusOperands(avc.AddrUnit, []byte{0x01, 0xde, 0xad, 0xbe, 0xef})
	if !errors.Is(err, avc.ErrUnexpectedOperands) {
		t.Errorf("wrong subfunction: err = %v, want ErrUnexpectedOperands", err)
	}
}

func TestPlugInfoUnitAsync(t *testing.T) {
	var op PlugInfoUnitAsync
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0x01, 0xde, 0xad, 0xff, 0xff}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.AsyncInputPlugs != 0xde || op.AsyncOutputPlugs != 0xad {
		t.Errorf("parsed %+v", op)
	}
}

func TestPlugInfoUnitOther(t *testing.T) {
	op := PlugInfoUnitOther{Subfunction: 0x53}
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0x53, 0xde, 0xad, 0xbe, 0xef}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.FirstInputPlug != 0xde || op.InputPlugs != 0xad ||
		op.FirstOutputPlug != 0xbe || op.OutputPlugs != 0xef {
		t.Errorf("parsed %+v", op)
	}

	operands, err := op.BuildStatusOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildStatusOperands failed: %v", err)
	}
	if !bytes.Equal(operands, []byte{0x53, 0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("operands = % 02x", operands)
	}
}

func TestPlugInfoSubunit(t *testing.T) {
	var op PlugInfoSubunit
	if err := op.ParseStatusOperands(avc.AudioSubunit0, []byte{0x00, 0xde, 0xad, 0xff, 0xff}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if op.DstPlugs != 0xde || op.SrcPlugs != 0xad {
		t.Errorf("parsed %+v", op)
	}

	if _, err := op.BuildStatusOperands(avc.AddrUnit); !errors.Is(err, avc.ErrInvalidAddress) {
		t.Errorf("unit address: err = %v, want ErrInvalidAddress", err)
	}
	if _, err := op.BuildStatusOperands(avc.SubunitAddr(avc.SubunitAudio, 4)); err != nil {
		t.Errorf("subunit address: %v", err)
	}
}

func TestPlugSignalFormatRoundTrip(t *testing.T) {
	operands := []byte{0x1e, 0xde, 0xad, 0xbe, 0xef}

	in := NewInputPlugSignalFormat(0x1e)
	if err := in.ParseStatusOperands(avc.AddrUnit, operands); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	if in.PlugID != 0x1e || in.FMT != 0xde || in.FDF != [3]byte{0xad, 0xbe, 0xef} {
		t.Errorf("parsed %+v", in.PlugSignalFormat)
	}

	status, err := in.BuildStatusOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildStatusOperands failed: %v", err)
	}
	if !bytes.Equal(status, []byte{0x1e, 0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("status operands = % 02x", status)
	}

	control, err := in.BuildControlOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildControlOperands failed: %v", err)
	}
	if !bytes.Equal(control, operands) {
		t.Errorf("control operands = % 02x, want % 02x", control, operands)
	}

	out := NewOutputPlugSignalFormat(0x1e)
	if out.Opcode() != 0x18 {
		t.Errorf("output opcode = 0x%02x, want 0x18", out.Opcode())
	}
	if in.Opcode() != 0x19 {
		t.Errorf("input opcode = 0x%02x, want 0x19", in.Opcode())
	}
	if err := out.ParseControlOperands(avc.AddrUnit, operands); err != nil {
		t.Fatalf("ParseControlOperands failed: %v", err)
	}
	if out.FMT != 0xde {
		t.Errorf("FMT = 0x%02x, want 0xde", out.FMT)
	}

	if _, err := in.BuildControlOperands(avc.MusicSubunit0); !errors.Is(err, avc.ErrInvalidAddress) {
		t.Errorf("subunit address: err = %v, want ErrInvalidAddress", err)
	}
}

func TestSignalAddrEncoding(t *testing.T) {
	tests := []struct {
		name string
		raw  [2]byte
	}{
		{"isoc unit plug 0", [2]byte{0xff, 0x00}},
		{"isoc unit plug 0x27", [2]byte{0xff, 0x27}},
		{"ext unit plug 0x07", [2]byte{0xff, 0x87}},
		{"ext unit plug 0x47", [2]byte{0xff, 0xc7}},
		{"music subunit plug", [2]byte{0x63, 0x07}},
		{"audio subunit plug", [2]byte{0x09, 0x11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeSignalAddr(tt.raw[:]).encode()
			if got != tt.raw {
				t.Errorf("round trip = % 02x, want % 02x", got, tt.raw)
			}
		})
	}
}

func TestSignalSourceOperands(t *testing.T) {
	dst := IsocUnitPlug(0x05)
	op := NewSignalSource(dst)
	if err := op.ParseStatusOperands(avc.AddrUnit, []byte{0x00, 0x2e, 0x1c, 0xff, 0x05}); err != nil {
		t.Fatalf("ParseStatusOperands failed: %v", err)
	}
	wantSrc := SubunitPlug(avc.SubunitTuner, 0x06, 0x1c)
	if op.Src != wantSrc {
		t.Errorf("Src = %+v, want %+v", op.Src, wantSrc)
	}
	if op.Dst != dst {
		t.Errorf("Dst = %+v, want %+v", op.Dst, dst)
	}

	status, err := op.BuildStatusOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildStatusOperands failed: %v", err)
	}
	if !bytes.Equal(status, []byte{0xff, 0xff, 0xfe, 0xff, 0x05}) {
		t.Errorf("status operands = % 02x", status)
	}

	control, err := op.BuildControlOperands(avc.AddrUnit)
	if err != nil {
		t.Fatalf("BuildControlOperands failed: %v", err)
	}
	if !bytes.Equal(control, []byte{0xff, 0x2e, 0x1c, 0xff, 0x05}) {
		t.Errorf("control operands = % 02x", control)
	}
}
