package configrom

import "fmt"

// KeyType identifies what a directory entry describes, as assigned by
// IEEE 1212. Values outside the assigned set are carried through unchanged.
type KeyType uint8

const (
	// KeyDescriptor references a descriptor leaf or directory.
	KeyDescriptor KeyType = 0x01

	// KeyBusDependentInfo references bus-dependent information.
	KeyBusDependentInfo KeyType = 0x02

	// KeyVendor is the vendor OUI.
	KeyVendor KeyType = 0x03

	// KeyHardwareVersion is the hardware version number.
	KeyHardwareVersion KeyType = 0x04

	// KeyModule references module information.
	KeyModule KeyType = 0x07

	// KeyNodeCapabilities is the node capabilities bitmap.
	KeyNodeCapabilities KeyType = 0x0c

	// KeyEui64 references the node's EUI-64 leaf.
	KeyEui64 KeyType = 0x0d

	// KeyUnit references a unit directory.
	KeyUnit KeyType = 0x11

	// KeySpecifierID identifies the body that defined the unit architecture.
	KeySpecifierID KeyType = 0x12

	// KeyVersion is the unit architecture version.
	KeyVersion KeyType = 0x13

	// KeyDependentInfo references unit-dependent information.
	KeyDependentInfo KeyType = 0x14

	// KeyUnitLocation is the base address of the unit's registers.
	KeyUnitLocation KeyType = 0x15

	// KeyModel is the model identifier.
	KeyModel KeyType = 0x17

	// KeyInstance references an instance directory.
	KeyInstance KeyType = 0x18

	// KeyKeyword references a keyword leaf.
	KeyKeyword KeyType = 0x19

	// KeyFeature references a feature directory.
	KeyFeature KeyType = 0x1a

	// KeyModifiableDescriptor references a modifiable descriptor.
	KeyModifiableDescriptor KeyType = 0x1f

	// KeyDirectoryID is the directory identifier.
	KeyDirectoryID KeyType = 0x20
)

// String returns the key name.
func (k KeyType) String() string {
	switch k {
	case KeyDescriptor:
		return "DESCRIPTOR"
	case KeyBusDependentInfo:
		return "BUS_DEPENDENT_INFO"
	case KeyVendor:
		return "VENDOR"
	case KeyHardwareVersion:
		return "HARDWARE_VERSION"
	case KeyModule:
		return "MODULE"
	case KeyNodeCapabilities:
		return "NODE_CAPABILITIES"
	case KeyEui64:
		return "EUI_64"
	case KeyUnit:
		return "UNIT"
	case KeySpecifierID:
		return "SPECIFIER_ID"
	case KeyVersion:
		return "VERSION"
	case KeyDependentInfo:
		return "DEPENDENT_INFO"
	case KeyUnitLocation:
		return "UNIT_LOCATION"
	case KeyModel:
		return "MODEL"
	case KeyInstance:
		return "INSTANCE"
	case KeyKeyword:
		return "KEYWORD"
	case KeyFeature:
		return "FEATURE"
	case KeyModifiableDescriptor:
		return "MODIFIABLE_DESCRIPTOR"
	case KeyDirectoryID:
		return "DIRECTORY_ID"
	default:
		return fmt.Sprintf("RESERVED(0x%02x)", uint8(k))
	}
}

// Entry is a single directory entry: a key plus one of the four data shapes.
type Entry struct {
	Key  KeyType
	Data EntryData
}

// EntryData is the data carried by a directory entry. The concrete type is
// one of Immediate, CsrOffset, Leaf or Directory, matching the entry's
// 2-bit type tag.
type EntryData interface {
	isEntryData()
}

// Immediate is a 24-bit value stored directly in the entry.
type Immediate uint32

// CsrOffset is an absolute address in the node's initial register space,
// resolved from the entry's 24-bit quadlet offset.
type CsrOffset uint64

// Leaf is the content of a leaf block, excluding its header quadlet.
type Leaf []byte

// Directory is the entry list of a directory block, in image order.
type Directory []Entry

func (Immediate) isEntryData() {}
func (CsrOffset) isEntryData() {}
func (Leaf) isEntryData()      {}
func (Directory) isEntryData() {}
