package avc

import (
	"errors"
	"fmt"
)

// Frame size limits. A frame always carries the command-type/address/opcode
// header; the response to the largest cataloged command fits in MaxFrameLen.
const (
	MinFrameLen = 3
	MaxFrameLen = 0x200
)

// Frame codec and operand errors.
var (
	// ErrMalformedFrame indicates a response frame shorter than the
	// three-byte header or carrying an undefined response code.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrUnexpectedOperands indicates response operands whose length or tag
	// bytes do not match the expected shape for the opcode.
	ErrUnexpectedOperands = errors.New("unexpected operands")

	// ErrInvalidAddress indicates an operation was asked to build operands
	// for an address it does not support.
	ErrInvalidAddress = errors.New("invalid address for operation")

	// ErrInvalidOperands indicates an operation could not serialize itself,
	// e.g. a vendor-dependent command with an empty payload.
	ErrInvalidOperands = errors.New("invalid operands")
)

// Response holds the decoded fields of a response frame.
type Response struct {
	Code     RespCode
	Addr     Addr
	Opcode   uint8
	Operands []byte
}

// ComposeCommandFrame lays out a command frame: command type, address,
// opcode, then the operation's serialized operands. It never fails; the
// caller guarantees address and operand validity.
func ComposeCommandFrame(ctype CmdType, addr Addr, opcode uint8, operands []byte) []byte {
	frame := make([]byte, 0, MinFrameLen+len(operands))
	frame = append(frame, uint8(ctype), uint8(addr), opcode)
	frame = append(frame, operands...)
	return frame
}

// ParseResponseFrame splits a response frame into its fields. It fails with
// ErrMalformedFrame when the frame is shorter than the header or the masked
// response code is not one of the defined set. The operand slice references
// the input; the caller must not mutate the frame while the Response is in
// use.
func ParseResponseFrame(frame []byte) (Response, error) {
	if len(frame) < MinFrameLen {
		return Response{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedFrame, len(frame), MinFrameLen)
	}
	code := RespCode(frame[0] & RespCodeMask)
	if !code.IsValid() {
		return Response{}, fmt.Errorf("%w: response code 0x%02x", ErrMalformedFrame, frame[0]&RespCodeMask)
	}
	return Response{
		Code:     code,
		Addr:     Addr(frame[1]),
		Opcode:   frame[2],
		Operands: frame[3:],
	}, nil
}

// Matches reports whether the response belongs to a transaction identified
// by its address and opcode. Responses echo both fields of the request.
func (r Response) Matches(addr Addr, opcode uint8) bool {
	return r.Addr == addr && r.Opcode == opcode
}
