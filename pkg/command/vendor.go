package command

import (
	"fmt"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

// VendorDependent is the AV/C VENDOR-DEPENDENT command: a 24-bit company id
// followed by an opaque payload whose meaning is private to that vendor.
// Vendor drivers use it as the entry point for their own register protocols.
// Usable as both control and status command.
type VendorDependent struct {
	CompanyID [3]byte
	Data      []byte
}

// NewVendorDependent returns a VendorDependent command for the given
// company id.
func NewVendorDependent(companyID [3]byte) *VendorDependent {
	return &VendorDependent{CompanyID: companyID}
}

// Opcode implements avc.Op.
func (v *VendorDependent) Opcode() uint8 { return OpcodeVendorDependent }

func (v *VendorDependent) buildOperands() ([]byte, error) {
	if len(v.Data) == 0 {
		return nil, fmt.Errorf("%w: empty vendor payload", avc.ErrInvalidOperands)
	}
	operands := make([]byte, 0, 3+len(v.Data))
	operands = append(operands, v.CompanyID[:]...)
	operands = append(operands, v.Data...)
	return operands, nil
}

func (v *VendorDependent) parseOperands(operands []byte) error {
	if len(operands) <= 3 {
		return fmt.Errorf("%w: %d operand bytes, need more than 3", avc.ErrUnexpectedOperands, len(operands))
	}
	copy(v.CompanyID[:], operands[0:3])
	v.Data = append(v.Data[:0], operands[3:]...)
	return nil
}

// BuildControlOperands implements avc.ControlOp.
func (v *VendorDependent) BuildControlOperands(_ avc.Addr) ([]byte, error) {
	return v.buildOperands()
}

// ParseControlOperands implements avc.ControlOp.
func (v *VendorDependent) ParseControlOperands(_ avc.Addr, operands []byte) error {
	return v.parseOperands(operands)
}

// BuildStatusOperands implements avc.StatusOp.
func (v *VendorDependent) BuildStatusOperands(_ avc.Addr) ([]byte, error) {
	return v.buildOperands()
}

// ParseStatusOperands implements avc.StatusOp.
func (v *VendorDependent) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	return v.parseOperands(operands)
}

// Compile-time interface satisfaction checks.
var (
	_ avc.ControlOp = (*VendorDependent)(nil)
	_ avc.StatusOp  = (*VendorDependent)(nil)
)
