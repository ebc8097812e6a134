package configrom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Parse errors. All wrap into the error chain with the byte offset that
// failed, so errors.Is works against the sentinel.
var (
	// ErrTruncated is returned when a block's declared content runs past
	// the end of the image.
	ErrTruncated = errors.New("content beyond image boundary")

	// ErrOutOfBounds is returned when a resolved offset points outside
	// the image.
	ErrOutOfBounds = errors.New("offset beyond image boundary")

	// ErrInvalidLength is returned when a block header declares a length
	// of zero quadlets.
	ErrInvalidLength = errors.New("invalid block length")

	// ErrInvalidKeyTag is returned when an entry's type tag cannot be
	// interpreted.
	ErrInvalidKeyTag = errors.New("invalid entry type tag")
)

// Entry type tags, the upper two bits of an entry's first byte.
const (
	entryTagImmediate = 0
	entryTagCsrOffset = 1
	entryTagLeaf      = 2
	entryTagDirectory = 3
)

// csrBase is the start of the initial register space in the CSR address map.
const csrBase = 0xfffff0000000

// ConfigROM is a parsed configuration ROM image. BusInfo and any Leaf data
// in the tree are sub-slices of the buffer given to Parse.
type ConfigROM struct {
	// BusInfo is the bus information block, excluding its header quadlet.
	BusInfo []byte

	// Root is the root directory's entry list.
	Root Directory
}

// Parse builds the entry tree from a raw configuration ROM image. The image
// is big-endian byte order, as read from the node. Parse never modifies the
// buffer and the result stays valid only as long as the buffer does.
func Parse(raw []byte) (*ConfigROM, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("bus info header: %d bytes: %w", len(raw), ErrTruncated)
	}

	busInfoLen := 4 * int(raw[0])
	pos := 4
	if pos+busInfoLen > len(raw) {
		return nil, fmt.Errorf("bus info: %d bytes declared, %d available: %w",
			busInfoLen, len(raw)-pos, ErrTruncated)
	}
	busInfo := raw[pos : pos+busInfoLen]
	pos += busInfoLen

	start, length, err := detectBlock(raw, pos, 0)
	if err != nil {
		return nil, fmt.Errorf("root directory: %w", err)
	}
	root, err := parseDirectory(raw, start, length)
	if err != nil {
		return nil, fmt.Errorf("root directory: %w", err)
	}

	return &ConfigROM{BusInfo: busInfo, Root: root}, nil
}

// detectBlock validates the block referenced from pos by a byte offset and
// returns the start and length of its content, past the header quadlet. The
// header's upper doublet is the content length in quadlets.
func detectBlock(raw []byte, pos, offset int) (start, length int, err error) {
	start = pos + offset
	if start+4 > len(raw) {
		return 0, 0, fmt.Errorf("block header at %d: %w", start, ErrOutOfBounds)
	}
	length = 4 * int(binary.BigEndian.Uint16(raw[start:start+2]))
	if length < 4 {
		return 0, 0, fmt.Errorf("block at %d declares %d bytes: %w", start, length, ErrInvalidLength)
	}
	start += 4
	if start+length > len(raw) {
		return 0, 0, fmt.Errorf("block at %d: %d bytes declared, %d available: %w",
			start, length, len(raw)-start, ErrTruncated)
	}
	return start, length, nil
}

// parseDirectory walks the entry run at [pos, pos+length) and resolves leaf
// and directory references. Offsets are unsigned and measured from the
// referencing entry, so every nested block lies strictly beyond its entry
// and the recursion terminates on any input.
func parseDirectory(raw []byte, pos, length int) (Directory, error) {
	entries := make(Directory, 0, length/4)

	for end := pos + length; pos < end; pos += 4 {
		tag := raw[pos] >> 6
		key := KeyType(raw[pos] & 0x3f)
		value := uint32(raw[pos+1])<<16 | uint32(raw[pos+2])<<8 | uint32(raw[pos+3])

		var data EntryData
		switch tag {
		case entryTagImmediate:
			data = Immediate(value)
		case entryTagCsrOffset:
			data = CsrOffset(csrBase + 4*uint64(value))
		case entryTagLeaf:
			start, n, err := detectBlock(raw, pos, 4*int(value))
			if err != nil {
				return nil, fmt.Errorf("%s leaf: %w", key, err)
			}
			data = Leaf(raw[start : start+n])
		case entryTagDirectory:
			start, n, err := detectBlock(raw, pos, 4*int(value))
			if err != nil {
				return nil, fmt.Errorf("%s directory: %w", key, err)
			}
			sub, err := parseDirectory(raw, start, n)
			if err != nil {
				return nil, fmt.Errorf("%s directory: %w", key, err)
			}
			data = sub
		default:
			// The tag field is two bits wide.
			return nil, fmt.Errorf("entry at %d: tag %d: %w", pos, tag, ErrInvalidKeyTag)
		}

		entries = append(entries, Entry{Key: key, Data: data})
	}

	return entries, nil
}
