// Package configrom parses IEEE 1212 configuration ROM images and provides
// typed access to the directory tree.
//
// A configuration ROM image starts with a bus information block whose length
// in quadlets is carried in the first byte, followed by the root directory.
// A directory is a run of 4-byte entries prefixed by a header quadlet whose
// upper doublet holds the entry count in quadlets. Each entry packs a 2-bit
// type tag and a 6-bit key into its first byte and a 24-bit value into the
// rest. Depending on the tag the value is an immediate, a CSR address offset,
// or a quadlet offset (relative to the entry's own position) to a leaf or a
// nested directory.
//
// # Parsing
//
// Parse walks the image once and builds the full entry tree. Leaf contents
// are sub-slices of the caller's buffer, never copies; the tree is immutable
// once built. Every resolved offset is bounds-checked, so a truncated or
// corrupt image yields an error rather than a partial tree.
//
// # Access
//
// Directory carries typed lookup methods (Immediate, CsrOffset, LeafData,
// Directory, Text, EUI64) that scan entries by key and fail with
// ErrKeyNotFound or ErrTypeMismatch. Descriptor leaves are decoded on demand
// with DecodeTextualDescriptor; the base parse leaves them opaque.
package configrom
