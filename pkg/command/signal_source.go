package command

import (
	"fmt"

	"github.com/firewire-audio/avc-go/pkg/avc"
)

// Unit plug flags in the second byte of a signal address.
const (
	signalExtPlugFlag = 0x80
	signalPlugIDMask  = 0x7f
)

// SignalAddr addresses a plug for signal routing: an isochronous or
// external plug on the unit, or a plug on a subunit. It encodes to two
// bytes on the wire.
type SignalAddr struct {
	// Addr is avc.AddrUnit for unit plugs, or the subunit address.
	Addr avc.Addr

	// PlugID is the plug number. For unit plugs the high bit selects
	// external plugs and the id is 7 bits.
	PlugID uint8

	// Ext marks a unit external plug. Ignored for subunit plugs.
	Ext bool
}

// IsocUnitPlug addresses an isochronous plug on the unit.
func IsocUnitPlug(plugID uint8) SignalAddr {
	return SignalAddr{Addr: avc.AddrUnit, PlugID: plugID & signalPlugIDMask}
}

// ExtUnitPlug addresses an external plug on the unit.
func ExtUnitPlug(plugID uint8) SignalAddr {
	return SignalAddr{Addr: avc.AddrUnit, PlugID: plugID & signalPlugIDMask, Ext: true}
}

// SubunitPlug addresses a plug on a subunit.
func SubunitPlug(t avc.SubunitType, id, plugID uint8) SignalAddr {
	return SignalAddr{Addr: avc.SubunitAddr(t, id), PlugID: plugID}
}

// encode returns the two-byte wire form of the address.
func (a SignalAddr) encode() [2]byte {
	if a.Addr.IsUnit() {
		b := a.PlugID & signalPlugIDMask
		if a.Ext {
			b |= signalExtPlugFlag
		}
		return [2]byte{uint8(avc.AddrUnit), b}
	}
	return [2]byte{uint8(a.Addr), a.PlugID}
}

// decodeSignalAddr parses the two-byte wire form.
func decodeSignalAddr(raw []byte) SignalAddr {
	if avc.Addr(raw[0]).IsUnit() {
		return SignalAddr{
			Addr:   avc.AddrUnit,
			PlugID: raw[1] & signalPlugIDMask,
			Ext:    raw[1]&signalExtPlugFlag != 0,
		}
	}
	return SignalAddr{Addr: avc.Addr(raw[0]), PlugID: raw[1]}
}

// SignalSource is the AV/C SIGNAL SOURCE command from the CCM
// specification. The control direction connects a source plug to a
// destination plug; the status direction queries which source currently
// feeds a destination. Vendor modules use it to steer routing.
type SignalSource struct {
	Src SignalAddr
	Dst SignalAddr
}

// NewSignalSource returns a SignalSource query for the given destination.
func NewSignalSource(dst SignalAddr) *SignalSource {
	return &SignalSource{
		Src: IsocUnitPlug(signalPlugIDMask),
		Dst: dst,
	}
}

// Opcode implements avc.Op.
func (s *SignalSource) Opcode() uint8 { return OpcodeSignalSource }

func (s *SignalSource) parseOperands(operands []byte) error {
	if len(operands) < 5 {
		return fmt.Errorf("%w: %d operand bytes, need 5", avc.ErrUnexpectedOperands, len(operands))
	}
	s.Src = decodeSignalAddr(operands[1:3])
	s.Dst = decodeSignalAddr(operands[3:5])
	return nil
}

// BuildControlOperands implements avc.ControlOp.
func (s *SignalSource) BuildControlOperands(_ avc.Addr) ([]byte, error) {
	src := s.Src.encode()
	dst := s.Dst.encode()
	return []byte{0xff, src[0], src[1], dst[0], dst[1]}, nil
}

// ParseControlOperands implements avc.ControlOp.
func (s *SignalSource) ParseControlOperands(_ avc.Addr, operands []byte) error {
	return s.parseOperands(operands)
}

// BuildStatusOperands implements avc.StatusOp. The source field of the
// query carries the 0xff/0xfe placeholder pair.
func (s *SignalSource) BuildStatusOperands(_ avc.Addr) ([]byte, error) {
	dst := s.Dst.encode()
	return []byte{0xff, 0xff, 0xfe, dst[0], dst[1]}, nil
}

// ParseStatusOperands implements avc.StatusOp.
func (s *SignalSource) ParseStatusOperands(_ avc.Addr, operands []byte) error {
	return s.parseOperands(operands)
}

// BuildNotifyOperands implements avc.NotifyOp. The query shape matches the
// status direction; the notification fires when the routing changes.
func (s *SignalSource) BuildNotifyOperands(addr avc.Addr) ([]byte, error) {
	return s.BuildStatusOperands(addr)
}

// ParseNotifyOperands implements avc.NotifyOp.
func (s *SignalSource) ParseNotifyOperands(_ avc.Addr, operands []byte) error {
	return s.parseOperands(operands)
}

// Compile-time interface satisfaction checks.
var (
	_ avc.ControlOp = (*SignalSource)(nil)
	_ avc.StatusOp  = (*SignalSource)(nil)
	_ avc.NotifyOp  = (*SignalSource)(nil)
)
