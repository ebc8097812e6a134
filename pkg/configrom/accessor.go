package configrom

import (
	"errors"
	"fmt"
)

// Accessor errors.
var (
	// ErrKeyNotFound is returned when a directory holds no entry with the
	// requested key.
	ErrKeyNotFound = errors.New("key not found in directory")

	// ErrTypeMismatch is returned when the entry with the requested key
	// holds a different data shape than the lookup expects.
	ErrTypeMismatch = errors.New("entry data type mismatch")
)

// AV/C unit architecture identification, registered by the 1394 Trade
// Association.
const (
	AvcUnitSpecifierID = 0x00a02d
	AvcUnitVersion     = 0x010001
)

// find returns the first entry with the given key.
func (d Directory) find(key KeyType) (Entry, error) {
	for _, e := range d {
		if e.Key == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%s: %w", key, ErrKeyNotFound)
}

// Immediate returns the immediate value of the first entry with the key.
func (d Directory) Immediate(key KeyType) (uint32, error) {
	e, err := d.find(key)
	if err != nil {
		return 0, err
	}
	v, ok := e.Data.(Immediate)
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrTypeMismatch)
	}
	return uint32(v), nil
}

// CsrOffset returns the register address of the first entry with the key.
func (d Directory) CsrOffset(key KeyType) (uint64, error) {
	e, err := d.find(key)
	if err != nil {
		return 0, err
	}
	v, ok := e.Data.(CsrOffset)
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrTypeMismatch)
	}
	return uint64(v), nil
}

// LeafData returns the leaf content of the first entry with the key.
func (d Directory) LeafData(key KeyType) (Leaf, error) {
	e, err := d.find(key)
	if err != nil {
		return nil, err
	}
	v, ok := e.Data.(Leaf)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrTypeMismatch)
	}
	return v, nil
}

// Directory returns the nested directory of the first entry with the key.
func (d Directory) Directory(key KeyType) (Directory, error) {
	e, err := d.find(key)
	if err != nil {
		return nil, err
	}
	v, ok := e.Data.(Directory)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrTypeMismatch)
	}
	return v, nil
}

// Text decodes the textual descriptor referenced by the first descriptor
// leaf entry with the key and returns its text.
func (d Directory) Text(key KeyType) (string, error) {
	leaf, err := d.LeafData(key)
	if err != nil {
		return "", err
	}
	td, err := DecodeTextualDescriptor(leaf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return td.Text, nil
}

// EUI64 decodes the node's EUI-64 leaf.
func (d Directory) EUI64() (uint64, error) {
	leaf, err := d.LeafData(KeyEui64)
	if err != nil {
		return 0, err
	}
	return DecodeEUI64(leaf)
}

// UnitDirectories returns all nested unit directories, in image order.
func (d Directory) UnitDirectories() []Directory {
	var units []Directory
	for _, e := range d {
		if e.Key != KeyUnit {
			continue
		}
		if sub, ok := e.Data.(Directory); ok {
			units = append(units, sub)
		}
	}
	return units
}

// FindAvcUnit returns the first unit directory declaring the AV/C unit
// architecture, identified by its specifier ID and version.
func (d Directory) FindAvcUnit() (Directory, bool) {
	for _, unit := range d.UnitDirectories() {
		specifier, err := unit.Immediate(KeySpecifierID)
		if err != nil || specifier != AvcUnitSpecifierID {
			continue
		}
		version, err := unit.Immediate(KeyVersion)
		if err != nil || version != AvcUnitVersion {
			continue
		}
		return unit, true
	}
	return nil, false
}
