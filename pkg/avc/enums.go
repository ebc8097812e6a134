package avc

import "fmt"

// CmdType is the command type tag in byte 0 of a command frame.
type CmdType uint8

const (
	// CmdControl performs an operation on the addressed target.
	CmdControl CmdType = 0x00

	// CmdStatus reads the current state of the addressed target.
	CmdStatus CmdType = 0x01

	// CmdSpecificInquiry asks whether the target supports a particular
	// control command including its operands.
	CmdSpecificInquiry CmdType = 0x02

	// CmdNotify schedules notification of a change in the addressed target.
	CmdNotify CmdType = 0x03

	// CmdGeneralInquiry asks whether the target supports a particular
	// control command by opcode alone.
	CmdGeneralInquiry CmdType = 0x04
)

// String returns the command type name.
func (c CmdType) String() string {
	switch c {
	case CmdControl:
		return "CONTROL"
	case CmdStatus:
		return "STATUS"
	case CmdSpecificInquiry:
		return "SPECIFIC_INQUIRY"
	case CmdNotify:
		return "NOTIFY"
	case CmdGeneralInquiry:
		return "GENERAL_INQUIRY"
	default:
		return fmt.Sprintf("RESERVED(0x%02x)", uint8(c))
	}
}

// RespCode is the response status in byte 0 of a response frame, after
// masking off the CTS bits.
type RespCode uint8

const (
	// RespNotImplemented indicates the target does not implement the
	// command or the addressed subunit.
	RespNotImplemented RespCode = 0x08

	// RespAccepted indicates a control command was processed or is
	// scheduled for processing.
	RespAccepted RespCode = 0x09

	// RespRejected indicates the target refused to process the command.
	RespRejected RespCode = 0x0a

	// RespInTransition indicates the target is in a transition state and
	// cannot answer yet; the command may be retried.
	RespInTransition RespCode = 0x0b

	// RespImplementedStable is the success code for status and inquiry
	// commands.
	RespImplementedStable RespCode = 0x0c

	// RespChanged is the notification scheduled by a notify command.
	RespChanged RespCode = 0x0d

	// RespInterim acknowledges receipt of a command whose real result will
	// arrive later as a separate response frame (deferred transaction).
	RespInterim RespCode = 0x0f
)

// RespCodeMask extracts the response code from byte 0 of a response frame.
// The upper bits carry the Command/Transaction Set and are not used.
const RespCodeMask = 0x0f

// IsValid reports whether the code is one of the defined response codes.
func (r RespCode) IsValid() bool {
	switch r {
	case RespNotImplemented, RespAccepted, RespRejected, RespInTransition,
		RespImplementedStable, RespChanged, RespInterim:
		return true
	default:
		return false
	}
}

// String returns the response code name.
func (r RespCode) String() string {
	switch r {
	case RespNotImplemented:
		return "NOT_IMPLEMENTED"
	case RespAccepted:
		return "ACCEPTED"
	case RespRejected:
		return "REJECTED"
	case RespInTransition:
		return "IN_TRANSITION"
	case RespImplementedStable:
		return "IMPLEMENTED_STABLE"
	case RespChanged:
		return "CHANGED"
	case RespInterim:
		return "INTERIM"
	default:
		return fmt.Sprintf("RESERVED(0x%02x)", uint8(r))
	}
}
