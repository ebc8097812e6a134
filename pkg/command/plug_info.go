package command

import (
	"fmt"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

// PLUG INFO subfunctions.
const (
	plugInfoSubfuncUnitIsocExt = 0x00
	plugInfoSubfuncUnitAsync   = 0x01
	plugInfoSubfuncSubunit     = 0x00
)

// plugInfoQuery builds the common status query: a subfunction byte plus
// four placeholder operands.
func plugInfoQuery(subfunction uint8) []byte {
	return []byte{subfunction, 0xff, 0xff, 0xff, 0xff}
}

// plugInfoCheck validates the common response shape for a subfunction.
func plugInfoCheck(subfunction uint8, operands []byte) error {
	if len(operands) < 5 {
		return fmt.Errorf("%w: %d operand bytes, need 5", avc.ErrUnexpectedOperands, len(operands))
	}
	if operands[0] != subfunction {
		return fmt.Errorf("%w: subfunction 0x%02x, want 0x%02x", avc.ErrUnexpectedOperands, operands[0], subfunction)
	}
	return nil
}

// PlugInfoUnitIsocExt queries the number of isochronous and external plugs
// on the unit (PLUG INFO subfunction 0x00). Status command, unit address
// only.
type PlugInfoUnitIsocExt struct {
	IsocInputPlugs      uint8
	IsocOutputPlugs     uint8
	ExternalInputPlugs  uint8
	ExternalOutputPlugs uint8
}

// Opcode implements avc.Op.
func (p *PlugInfoUnitIsocExt) Opcode() uint8 { return OpcodePlugInfo }

// BuildStatusOperands implements avc.StatusOp.
func (p *PlugInfoUnitIsocExt) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	if !addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	return plugInfoQuery(plugInfoSubfuncUnitIsocExt), nil
}

// ParseStatusOperands implements avc.StatusOp.
func (p *PlugInfoUnitIsocExt) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	if err := plugInfoCheck(plugInfoSubfuncUnitIsocExt, operands); err != nil {
		return err
	}
	p.IsocInputPlugs = operands[1]
	p.IsocOutputPlugs = operands[2]
	p.ExternalInputPlugs = operands[3]
	p.ExternalOutputPlugs = operands[4]
	return nil
}

// PlugInfoUnitAsync queries the number of asynchronous plugs on the unit
// (PLUG INFO subfunction 0x01). Status command, unit address only.
type PlugInfoUnitAsync struct {
	AsyncInputPlugs  uint8
	AsyncOutputPlugs uint8
}

// Opcode implements avc.Op.
func (p *PlugInfoUnitAsync) Opcode() uint8 { return OpcodePlugInfo }

// BuildStatusOperands implements avc.StatusOp.
func (p *PlugInfoUnitAsync) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	if !addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	return plugInfoQuery(plugInfoSubfuncUnitAsync), nil
}

// ParseStatusOperands implements avc.StatusOp.
func (p *PlugInfoUnitAsync) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	if err := plugInfoCheck(plugInfoSubfuncUnitAsync, operands); err != nil {
		return err
	}
	p.AsyncInputPlugs = operands[1]
	p.AsyncOutputPlugs = operands[2]
	return nil
}

// PlugInfoUnitOther queries plug ranges for a vendor-defined PLUG INFO
// subfunction. Status command, unit address only.
type PlugInfoUnitOther struct {
	Subfunction     uint8
	FirstInputPlug  uint8
	InputPlugs      uint8
	FirstOutputPlug uint8
	OutputPlugs     uint8
}

// Opcode implements avc.Op.
func (p *PlugInfoUnitOther) Opcode() uint8 { return OpcodePlugInfo }

// BuildStatusOperands implements avc.StatusOp.
func (p *PlugInfoUnitOther) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	if !addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	return plugInfoQuery(p.Subfunction), nil
}

// ParseStatusOperands implements avc.StatusOp.
func (p *PlugInfoUnitOther) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	if err := plugInfoCheck(p.Subfunction, operands); err != nil {
		return err
	}
	p.FirstInputPlug = operands[1]
	p.InputPlugs = operands[2]
	p.FirstOutputPlug = operands[3]
	p.OutputPlugs = operands[4]
	return nil
}

// PlugInfoSubunit queries the number of destination and source plugs of a
// subunit. Status command, subunit addresses only.
type PlugInfoSubunit struct {
	DstPlugs uint8
	SrcPlugs uint8
}

// Opcode implements avc.Op.
func (p *PlugInfoSubunit) Opcode() uint8 { return OpcodePlugInfo }

// BuildStatusOperands implements avc.StatusOp.
func (p *PlugInfoSubunit) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	if addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	return plugInfoQuery(plugInfoSubfuncSubunit), nil
}

// ParseStatusOperands implements avc.StatusOp.
func (p *PlugInfoSubunit) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	if err := plugInfoCheck(plugInfoSubfuncSubunit, operands); err != nil {
		return err
	}
	p.DstPlugs = operands[1]
	p.SrcPlugs = operands[2]
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ avc.StatusOp = (*PlugInfoUnitIsocExt)(nil)
	_ avc.StatusOp = (*PlugInfoUnitAsync)(nil)
	_ avc.StatusOp = (*PlugInfoUnitOther)(nil)
	_ avc.StatusOp = (*PlugInfoSubunit)(nil)
)
