package avc

import "fmt"

// SubunitType identifies the kind of subunit inside a unit, as assigned by
// the 1394 Trade Association.
type SubunitType uint8

const (
	// SubunitMonitor is a video monitor subunit.
	SubunitMonitor SubunitType = 0x00

	// SubunitAudio is an audio subunit.
	SubunitAudio SubunitType = 0x01

	// SubunitPrinter is a printer subunit.
	SubunitPrinter SubunitType = 0x02

	// SubunitDisc is a disc recorder/player subunit.
	SubunitDisc SubunitType = 0x03

	// SubunitTape is a tape recorder/player subunit.
	SubunitTape SubunitType = 0x04

	// SubunitTuner is a tuner subunit.
	SubunitTuner SubunitType = 0x05

	// SubunitCa is a conditional-access subunit.
	SubunitCa SubunitType = 0x06

	// SubunitCamera is a video camera subunit.
	SubunitCamera SubunitType = 0x07

	// SubunitPanel is a panel subunit.
	SubunitPanel SubunitType = 0x09

	// SubunitBulletinBoard is a bulletin board subunit.
	SubunitBulletinBoard SubunitType = 0x0a

	// SubunitCameraStorage is a camera storage subunit.
	SubunitCameraStorage SubunitType = 0x0b

	// SubunitMusic is a music subunit.
	SubunitMusic SubunitType = 0x0c

	// SubunitVendorUnique is a vendor-unique subunit.
	SubunitVendorUnique SubunitType = 0x1c

	// SubunitExtended indicates the subunit type is carried in an
	// extension field.
	SubunitExtended SubunitType = 0x1e
)

// String returns the subunit type name.
func (t SubunitType) String() string {
	switch t {
	case SubunitMonitor:
		return "MONITOR"
	case SubunitAudio:
		return "AUDIO"
	case SubunitPrinter:
		return "PRINTER"
	case SubunitDisc:
		return "DISC"
	case SubunitTape:
		return "TAPE"
	case SubunitTuner:
		return "TUNER"
	case SubunitCa:
		return "CA"
	case SubunitCamera:
		return "CAMERA"
	case SubunitPanel:
		return "PANEL"
	case SubunitBulletinBoard:
		return "BULLETIN_BOARD"
	case SubunitCameraStorage:
		return "CAMERA_STORAGE"
	case SubunitMusic:
		return "MUSIC"
	case SubunitVendorUnique:
		return "VENDOR_UNIQUE"
	case SubunitExtended:
		return "EXTENDED"
	default:
		return fmt.Sprintf("RESERVED(0x%02x)", uint8(t))
	}
}

// Bit layout of the address byte in subunit form.
const (
	subunitTypeShift = 3
	subunitTypeMask  = 0x1f
	subunitIDMask    = 0x07
)

// Addr is the one-byte AV/C address of a command target: the unit itself or
// one of its subunits. The zero value is the first monitor subunit; use
// AddrUnit or SubunitAddr to construct meaningful addresses.
type Addr uint8

// AddrUnit addresses the unit as a whole.
const AddrUnit Addr = 0xff

// Convenience addresses for the first audio and music subunits, the two
// kinds every device in this protocol family exposes.
var (
	AudioSubunit0 = SubunitAddr(SubunitAudio, 0)
	MusicSubunit0 = SubunitAddr(SubunitMusic, 0)
)

// SubunitAddr builds the address of a specific subunit. The id is truncated
// to its 3-bit field.
func SubunitAddr(t SubunitType, id uint8) Addr {
	return Addr((uint8(t)&subunitTypeMask)<<subunitTypeShift | id&subunitIDMask)
}

// IsUnit reports whether the address targets the unit rather than a subunit.
func (a Addr) IsUnit() bool {
	return a == AddrUnit
}

// SubunitType returns the subunit type encoded in the address.
// Meaningless for the unit address.
func (a Addr) SubunitType() SubunitType {
	return SubunitType((uint8(a) >> subunitTypeShift) & subunitTypeMask)
}

// SubunitID returns the subunit instance id encoded in the address.
// Meaningless for the unit address.
func (a Addr) SubunitID() uint8 {
	return uint8(a) & subunitIDMask
}

// String returns a readable form of the address.
func (a Addr) String() string {
	if a.IsUnit() {
		return "UNIT"
	}
	return fmt.Sprintf("%s[%d]", a.SubunitType(), a.SubunitID())
}
