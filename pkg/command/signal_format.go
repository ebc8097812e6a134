package command

import (
	"fmt"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

// PlugSignalFormat is the shared body of the input and output plug signal
// format commands: a unit plug id, an IEC 61883 format field and its three
// format-dependent bytes. Unit address only; the control direction carries
// the format to set, the status direction queries it.
type PlugSignalFormat struct {
	PlugID uint8
	FMT    uint8
	FDF    [3]byte
}

func (p *PlugSignalFormat) buildOperands(addr avc.Addr, forStatus bool) ([]byte, error) {
	if !addr.IsUnit() {
		return nil, avc.ErrInvalidAddress
	}
	if forStatus {
		return []byte{p.PlugID, 0xff, 0xff, 0xff, 0xff}, nil
	}
	return []byte{p.PlugID, p.FMT, p.FDF[0], p.FDF[1], p.FDF[2]}, nil
}

func (p *PlugSignalFormat) parseOperands(operands []byte) error {
	if len(operands) < 5 {
		return fmt.Errorf("%w: %d operand bytes, need 5", avc.ErrUnexpectedOperands, len(operands))
	}
	p.PlugID = operands[0]
	p.FMT = operands[1]
	copy(p.FDF[:], operands[2:5])
	return nil
}

// InputPlugSignalFormat is the AV/C INPUT PLUG SIGNAL FORMAT command.
type InputPlugSignalFormat struct {
	PlugSignalFormat
}

// NewInputPlugSignalFormat returns a command addressing the given input plug.
func NewInputPlugSignalFormat(plugID uint8) *InputPlugSignalFormat {
	return &InputPlugSignalFormat{PlugSignalFormat{PlugID: plugID, FMT: 0xff, FDF: [3]byte{0xff, 0xff, 0xff}}}
}

// Opcode implements avc.Op.
func (p *InputPlugSignalFormat) Opcode() uint8 { return OpcodeInputPlugSignalFormat }

// BuildControlOperands implements avc.ControlOp.
func (p *InputPlugSignalFormat) BuildControlOperands(addr avc.Addr) ([]byte, error) {
	return p.buildOperands(addr, false)
}

// ParseControlOperands implements avc.ControlOp.
func (p *InputPlugSignalFormat) ParseControlOperands(_ avc.Addr, operands []byte) error {
	return p.parseOperands(operands)
}

// BuildStatusOperands implements avc.StatusOp.
func (p *InputPlugSignalFormat) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	return p.buildOperands(addr, true)
}

// ParseStatusOperands implements avc.StatusOp.
func (p *InputPlugSignalFormat) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	return p.parseOperands(operands)
}

// OutputPlugSignalFormat is the AV/C OUTPUT PLUG SIGNAL FORMAT command.
type OutputPlugSignalFormat struct {
	PlugSignalFormat
}

// NewOutputPlugSignalFormat returns a command addressing the given output plug.
func NewOutputPlugSignalFormat(plugID uint8) *OutputPlugSignalFormat {
	return &OutputPlugSignalFormat{PlugSignalFormat{PlugID: plugID, FMT: 0xff, FDF: [3]byte{0xff, 0xff, 0xff}}}
}

// Opcode implements avc.Op.
func (p *OutputPlugSignalFormat) Opcode() uint8 { return OpcodeOutputPlugSignalFormat }

// BuildControlOperands implements avc.ControlOp.
func (p *OutputPlugSignalFormat) BuildControlOperands(addr avc.Addr) ([]byte, error) {
	return p.buildOperands(addr, false)
}

// ParseControlOperands implements avc.ControlOp.
func (p *OutputPlugSignalFormat) ParseControlOperands(_ avc.Addr, operands []byte) error {
	return p.parseOperands(operands)
}

// BuildStatusOperands implements avc.StatusOp.
func (p *OutputPlugSignalFormat) BuildStatusOperands(addr avc.Addr) ([]byte, error) {
	return p.buildOperands(addr, true)
}

// ParseStatusOperands implements avc.StatusOp.
func (p *OutputPlugSignalFormat) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	return p.parseOperands(operands)
}

// Compile-time interface satisfaction checks.
var (
	_ avc.ControlOp = (*InputPlugSignalFormat)(nil)
	_ avc.StatusOp  = (*InputPlugSignalFormat)(nil)
	_ avc.ControlOp = (*OutputPlugSignalFormat)(nil)
	_ avc.StatusOp  = (*OutputPlugSignalFormat)(nil)
)
