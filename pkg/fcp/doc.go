// Package fcp drives AV/C transactions over the Function Control Protocol.
//
// An Engine owns one FCP command slot: it composes the command frame,
// submits it through the caller-supplied Transport, classifies the response
// code and hands the final operands back to the operation. Three situations
// need more than a single exchange and the engine resolves all of them
// before returning:
//
//   - interim: the device acknowledged the command and will deliver the
//     real result later as an unsolicited response frame. The engine
//     registers the transaction's address and opcode and waits for the
//     matching frame, delivered via HandleResponse, within the policy
//     window.
//   - in transition: the device is busy. The engine retries with backoff
//     up to the policy retry limit.
//   - rejected / not implemented: terminal, never retried.
//
// Callers use the Control, Status, SpecificInquiry and Notify entry points,
// which differ only in command type tag and expected success code. One
// transaction is in flight per engine at any time; engines for different
// devices are independent.
//
// Timing policy comes from pkg/quirks, so devices that answer slowly or
// report busy in bursts get their overrides from configuration rather than
// code.
package fcp
