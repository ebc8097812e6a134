// Package avc defines the AV/C command and response frame format used over
// the Function Control Protocol (FCP) on IEEE 1394.
//
// A frame is a short big-endian byte sequence:
//
//	byte 0: command type (request) or response code (response)
//	byte 1: address (unit, or subunit type/id)
//	byte 2: opcode
//	byte 3+: operands, whose layout is opcode-specific
//
// The package is pure transform: it composes command frames and parses
// response frames, but performs no I/O. Operation types (the command
// catalog) live in package command; the transaction engine that drives a
// frame through a transport lives in package fcp.
//
// # Operations
//
// Every cataloged operation implements Op, fixing its opcode, plus one or
// more of ControlOp, StatusOp and NotifyOp depending on which command types
// it supports. The build and parse directions are both present because an
// operation serializes a query shape for status commands and parses the
// device's answer back into itself.
package avc
