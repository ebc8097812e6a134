package configrom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Descriptor decode errors.
var (
	// ErrUnsupportedDescriptor is returned for descriptor types other
	// than textual.
	ErrUnsupportedDescriptor = errors.New("unsupported descriptor type")

	// ErrInvalidText is returned when a textual descriptor does not hold
	// valid UTF-8.
	ErrInvalidText = errors.New("invalid text string in descriptor")
)

// textualDescriptorType is the descriptor type for minimal ASCII text.
const textualDescriptorType = 0

// TextualDescriptor is the decoded form of a textual descriptor leaf.
type TextualDescriptor struct {
	// SpecifierID identifies who defined the descriptor format; zero for
	// the formats defined by IEEE 1212 itself.
	SpecifierID uint32

	// Width is the character width code.
	Width uint8

	// CharacterSet is the character set code.
	CharacterSet uint16

	// Language is the language specifier.
	Language uint16

	// Text is the descriptor text, up to the first NUL.
	Text string
}

// DecodeTextualDescriptor interprets a descriptor leaf as a textual
// descriptor. The first quadlet carries the descriptor type and specifier
// ID, the second the width, character set and language fields; the text
// follows, NUL-terminated or running to the end of the leaf.
func DecodeTextualDescriptor(leaf Leaf) (TextualDescriptor, error) {
	if len(leaf) < 8 {
		return TextualDescriptor{}, fmt.Errorf("descriptor leaf: %d bytes: %w", len(leaf), ErrTruncated)
	}

	head := binary.BigEndian.Uint32(leaf[:4])
	if typ := uint8(head >> 24); typ != textualDescriptorType {
		return TextualDescriptor{}, fmt.Errorf("descriptor type %d: %w", typ, ErrUnsupportedDescriptor)
	}

	meta := binary.BigEndian.Uint32(leaf[4:8])
	literal := leaf[8:]
	text := literal
	if i := bytes.IndexByte(literal, 0x00); i >= 0 {
		text = literal[:i]
	}
	if !utf8.Valid(text) {
		return TextualDescriptor{}, ErrInvalidText
	}

	return TextualDescriptor{
		SpecifierID:  head & 0x00ffffff,
		Width:        uint8(meta >> 28),
		CharacterSet: uint16(meta >> 16 & 0x0fff),
		Language:     uint16(meta),
		Text:         string(text),
	}, nil
}

// DecodeEUI64 interprets a leaf as an EUI-64, two quadlets of identifier.
func DecodeEUI64(leaf Leaf) (uint64, error) {
	if len(leaf) < 8 {
		return 0, fmt.Errorf("EUI-64 leaf: %d bytes: %w", len(leaf), ErrTruncated)
	}
	return binary.BigEndian.Uint64(leaf[:8]), nil
}
