package command

import (
	"fmt"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

// Bit layout of the page/extension operand byte.
const (
	subunitInfoPageShift = 4
	subunitInfoPageMask  = 0x07
	subunitInfoExtMask   = 0x07
)

// SubunitInfoEntry is one slot of the subunit inventory: a subunit type and
// the highest instance id present for it.
type SubunitInfoEntry struct {
	SubunitType avc.SubunitType
	MaximumID   uint8
}

// SubunitInfo is the AV/C SUBUNIT INFO command. It lists the subunits a
// unit contains, four entries per page. Status command, unit address only.
type SubunitInfo struct {
	Page          uint8
	ExtensionCode uint8
	Entries       []SubunitInfoEntry
}

// NewSubunitInfo returns a SubunitInfo query for the given page.
func NewSubunitInfo(page, extensionCode uint8) *SubunitInfo {
	return &SubunitInfo{Page: page, ExtensionCode: extensionCode}
}

// Opcode implements avc.Op.
func (s *SubunitInfo) Opcode() uint8 { return OpcodeSubunitInfo }

// BuildStatusOperands implements avc.StatusOp.
func (s *SubunitInfo) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	if !addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	first := (s.Page&subunitInfoPageMask)<<subunitInfoPageShift | s.ExtensionCode&subunitInfoExtMask
	return []byte{first, 0xff, 0xff, 0xff, 0xff}, nil
}

// ParseStatusOperands implements avc.StatusOp.
func (s *SubunitInfo) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	if len(operands) < 5 {
		return fmt.Errorf("%w: %d operand bytes, need 5", avc.ErrUnexpectedOperands, len(operands))
	}
	s.Page = (operands[0] >> subunitInfoPageShift) & subunitInfoPageMask
	s.ExtensionCode = operands[0] & subunitInfoExtMask

	s.Entries = s.Entries[:0]
	for _, operand := range operands[1:5] {
		if operand == 0xff {
			continue
		}
		a := avc.Addr(operand)
		s.Entries = append(s.Entries, SubunitInfoEntry{
			SubunitType: a.SubunitType(),
			MaximumID:   a.SubunitID(),
		})
	}
	return nil
}

// Compile-time interface satisfaction check.
var _ avc.StatusOp = (*SubunitInfo)(nil)
