package fcp

import "context"

// Transport is the FCP binding supplied by the caller, typically a kernel
// FireWire interface. Send writes one command frame to the device's command
// register and returns the response frame from the initial exchange.
//
// A device may answer a deferred command with a second, unsolicited response
// frame. Transports deliver those to Engine.HandleResponse.
type Transport interface {
	Send(ctx context.Context, request []byte) ([]byte, error)
}
