package avc

// Op is implemented by every cataloged AV/C operation and fixes the opcode
// it is exchanged under.
type Op interface {
	Opcode() uint8
}

// ControlOp is an operation usable with control and specific-inquiry
// commands. BuildControlOperands serializes the outgoing operand bytes;
// ParseControlOperands fills the operation in from the echoed response
// operands.
type ControlOp interface {
	Op
	BuildControlOperands(addr Addr) ([]byte, error)
	ParseControlOperands(addr Addr, operands []byte) error
}

// StatusOp is an operation usable with status commands. The build direction
// produces the query shape (typically 0xff placeholders); the parse
// direction decodes the device's answer.
type StatusOp interface {
	Op
	BuildStatusOperands(addr Addr) ([]byte, error)
	ParseStatusOperands(addr Addr, operands []byte) error
}

// NotifyOp is an operation usable with notify commands. The parse direction
// decodes the changed state carried by the notification response.
type NotifyOp interface {
	Op
	BuildNotifyOperands(addr Addr) ([]byte, error)
	ParseNotifyOperands(addr Addr, operands []byte) error
}
