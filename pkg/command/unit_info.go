package command

import (
	"fmt"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

// unitInfoFirstOperand is the fixed first operand byte of UNIT INFO.
const unitInfoFirstOperand = 0x07

// UnitInfo is the AV/C UNIT INFO command. It identifies the unit: the
// subunit type the unit presents itself as, its id, and the vendor's
// 24-bit company id. Status command, unit address only.
type UnitInfo struct {
	UnitType  avc.SubunitType
	UnitID    uint8
	CompanyID [3]byte
}

// NewUnitInfo returns a UnitInfo query with placeholder fields.
func NewUnitInfo() *UnitInfo {
	return &UnitInfo{
		UnitType:  avc.SubunitType(0x1f),
		UnitID:    0x07,
		CompanyID: [3]byte{0xff, 0xff, 0xff},
	}
}

// Opcode implements avc.Op.
func (u *UnitInfo) Opcode() uint8 { return OpcodeUnitInfo }

// BuildStatusOperands implements avc.StatusOp.
func (u *UnitInfo) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	if !addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	return []byte{unitInfoFirstOperand, 0xff, 0xff, 0xff, 0xff}, nil
}

// ParseStatusOperands implements avc.StatusOp.
func (u *UnitInfo) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	if len(operands) < 5 {
		return fmt.Errorf("%w: %d operand bytes, need 5", avc.ErrUnexpectedOperands, len(operands))
	}
	a := avc.Addr(operands[1])
	u.UnitType = a.SubunitType()
	u.UnitID = a.SubunitID()
	copy(u.CompanyID[:], operands[2:5])
	return nil
}

// Compile-time interface satisfaction check.
var _ avc.StatusOp = (*UnitInfo)(nil)
