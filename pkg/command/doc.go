// Package command is the catalog of AV/C operations described in the AV/C
// general and CCM specifications.
//
// Each operation fixes its own opcode and operand layout and implements the
// build/parse interfaces from package avc for the command types it supports.
// The transaction engine in package fcp never looks inside operands; only
// the operation that produced a request knows how to decode its response.
//
// Cataloged operations:
//
//   - UnitInfo (0x30): unit type, id and company id of the unit
//   - SubunitInfo (0x31): subunit inventory by page
//   - VendorDependent (0x00): opaque vendor payload passthrough
//   - PlugInfoUnitIsocExt / PlugInfoUnitAsync / PlugInfoUnitOther /
//     PlugInfoSubunit (0x02): plug counts
//   - InputPlugSignalFormat (0x19) / OutputPlugSignalFormat (0x18):
//     plug signal format get/set
//   - SignalSource (0x1a): signal routing source/destination
//
// New operations are additive: define a type, fix its opcode, and implement
// the relevant interfaces.
package command
