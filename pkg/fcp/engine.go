package fcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/firewire-audio/avc-go/pkg/avc"
	"github.com/firewire-audio/avc-go/pkg/log"
	"github.com/firewire-audio/avc-go/pkg/quirks"
)

// Transaction errors.
var (
	// ErrTimeout indicates the exchange did not complete within the policy
	// window, including a busy device that stayed busy through the whole
	// retry budget.
	ErrTimeout = errors.New("transaction timed out")

	// ErrRejected indicates the target answered rejected or not
	// implemented. The transaction is never retried.
	ErrRejected = errors.New("command rejected by target")

	// ErrUnexpectedStatus indicates a defined response code that is not
	// the expected success code for the command type.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// pendingKey correlates an unsolicited response frame with the deferred
// transaction waiting for it.
type pendingKey struct {
	addr   uint8
	opcode uint8
}

// Engine drives AV/C transactions against one device. Callers may share an
// engine between goroutines; transactions are serialized internally because
// the device has a single FCP command slot.
type Engine struct {
	id        string
	transport Transport
	policy    quirks.Policy
	logger    log.Logger

	// mu serializes transactions.
	mu sync.Mutex

	// pmu guards pending.
	pmu     sync.Mutex
	pending map[pendingKey]chan []byte
}

// NewEngine creates an engine over the given transport. A zero policy is
// replaced by the default; a nil logger disables capture.
func NewEngine(transport Transport, policy quirks.Policy, logger log.Logger) *Engine {
	if policy == (quirks.Policy{}) {
		policy = quirks.DefaultPolicy()
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Engine{
		id:        uuid.NewString(),
		transport: transport,
		policy:    policy,
		logger:    logger,
		pending:   make(map[pendingKey]chan []byte),
	}
}

// ID returns the engine's unique identifier, as used in capture events.
func (e *Engine) ID() string {
	return e.id
}

// Policy returns the engine's transaction policy.
func (e *Engine) Policy() quirks.Policy {
	return e.policy
}

// Control performs a control transaction: build the operation's operands,
// exchange frames and parse the accepted response back into the operation.
func (e *Engine) Control(ctx context.Context, addr avc.Addr, op avc.ControlOp) error {
	operands, err := op.BuildControlOperands(addr)
	if err != nil {
		return err
	}
	resp, err := e.transact(ctx, avc.CmdControl, addr, op.Opcode(), operands, avc.RespAccepted)
	if err != nil {
		return err
	}
	return op.ParseControlOperands(addr, resp.Operands)
}

// Status performs a status transaction and parses the stable response back
// into the operation.
func (e *Engine) Status(ctx context.Context, addr avc.Addr, op avc.StatusOp) error {
	operands, err := op.BuildStatusOperands(addr)
	if err != nil {
		return err
	}
	resp, err := e.transact(ctx, avc.CmdStatus, addr, op.Opcode(), operands, avc.RespImplementedStable)
	if err != nil {
		return err
	}
	return op.ParseStatusOperands(addr, resp.Operands)
}

// SpecificInquiry asks whether the target supports the exact control
// command the operation would issue. The target answers implemented without
// executing anything; not implemented maps to ErrRejected.
func (e *Engine) SpecificInquiry(ctx context.Context, addr avc.Addr, op avc.ControlOp) error {
	operands, err := op.BuildControlOperands(addr)
	if err != nil {
		return err
	}
	_, err = e.transact(ctx, avc.CmdSpecificInquiry, addr, op.Opcode(), operands, avc.RespImplementedStable)
	return err
}

// Notify schedules a change notification and blocks until the target
// reports the changed state, parsing it back into the operation.
func (e *Engine) Notify(ctx context.Context, addr avc.Addr, op avc.NotifyOp) error {
	operands, err := op.BuildNotifyOperands(addr)
	if err != nil {
		return err
	}
	resp, err := e.transact(ctx, avc.CmdNotify, addr, op.Opcode(), operands, avc.RespChanged)
	if err != nil {
		return err
	}
	return op.ParseNotifyOperands(addr, resp.Operands)
}

// HandleResponse delivers an unsolicited response frame from the transport.
// Frames that do not belong to a waiting transaction are dropped; the
// device is free to emit notifications nobody asked for.
func (e *Engine) HandleResponse(frame []byte) {
	if len(frame) < avc.MinFrameLen {
		return
	}
	key := pendingKey{addr: frame[1], opcode: frame[2]}

	e.pmu.Lock()
	ch, ok := e.pending[key]
	e.pmu.Unlock()
	if !ok {
		return
	}

	select {
	case ch <- frame:
	default:
	}
}

// transact runs one transaction to completion: submit, classify, retry on
// busy, wait out a deferred response, and demand the expected success code.
func (e *Engine) transact(ctx context.Context, ctype avc.CmdType, addr avc.Addr, opcode uint8, operands []byte, want avc.RespCode) (avc.Response, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	frame := avc.ComposeCommandFrame(ctype, addr, opcode, operands)
	delays := newBackoff(e.policy.Backoff)

	for attempt := 0; ; attempt++ {
		resp, err := e.exchange(ctx, frame, addr, opcode)
		if err != nil {
			e.logError(err, fmt.Sprintf("%s %s opcode 0x%02x", ctype, addr, opcode))
			return avc.Response{}, err
		}

		switch resp.Code {
		case want:
			return resp, nil
		case avc.RespInTransition:
			if attempt >= e.policy.RetryLimit {
				err := fmt.Errorf("busy after %d attempts: %w", attempt+1, ErrTimeout)
				e.logError(err, fmt.Sprintf("%s %s opcode 0x%02x", ctype, addr, opcode))
				return avc.Response{}, err
			}
			delay := delays.Next()
			e.logRetry(attempt+1, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return avc.Response{}, ctx.Err()
			}
		case avc.RespNotImplemented, avc.RespRejected:
			err := fmt.Errorf("%s: %w", resp.Code, ErrRejected)
			e.logError(err, fmt.Sprintf("%s %s opcode 0x%02x", ctype, addr, opcode))
			return avc.Response{}, err
		default:
			err := fmt.Errorf("%s, want %s: %w", resp.Code, want, ErrUnexpectedStatus)
			e.logError(err, fmt.Sprintf("%s %s opcode 0x%02x", ctype, addr, opcode))
			return avc.Response{}, err
		}
	}
}

// exchange performs one submit and resolves an interim acknowledgement into
// the deferred final response. The policy timeout bounds the whole exchange.
func (e *Engine) exchange(ctx context.Context, frame []byte, addr avc.Addr, opcode uint8) (avc.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, e.policy.Timeout)
	defer cancel()

	// Register before submitting: a fast device may deliver the deferred
	// response before Send returns.
	key := pendingKey{addr: uint8(addr), opcode: opcode}
	ch := e.register(key)
	defer e.unregister(key)

	e.logFrame(log.DirectionOut, log.CategoryFrame, frame)
	raw, err := e.transport.Send(ctx, frame)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return avc.Response{}, fmt.Errorf("no response within %v: %w", e.policy.Timeout, ErrTimeout)
		}
		return avc.Response{}, fmt.Errorf("transport: %w", err)
	}

	resp, err := avc.ParseResponseFrame(raw)
	if err != nil {
		return avc.Response{}, err
	}
	if !resp.Matches(addr, opcode) {
		return avc.Response{}, fmt.Errorf("%w: response for %s opcode 0x%02x",
			avc.ErrMalformedFrame, resp.Addr, resp.Opcode)
	}

	if resp.Code != avc.RespInterim {
		e.logFrame(log.DirectionIn, log.CategoryFrame, raw)
		return resp, nil
	}
	e.logFrame(log.DirectionIn, log.CategoryInterim, raw)

	// Deferred: the real result arrives as an unsolicited frame.
	select {
	case final := <-ch:
		resp, err := avc.ParseResponseFrame(final)
		if err != nil {
			return avc.Response{}, err
		}
		e.logFrame(log.DirectionIn, log.CategoryFrame, final)
		return resp, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.Canceled) {
			return avc.Response{}, ctx.Err()
		}
		return avc.Response{}, fmt.Errorf("deferred response within %v: %w", e.policy.Timeout, ErrTimeout)
	}
}

func (e *Engine) register(key pendingKey) chan []byte {
	ch := make(chan []byte, 1)
	e.pmu.Lock()
	e.pending[key] = ch
	e.pmu.Unlock()
	return ch
}

func (e *Engine) unregister(key pendingKey) {
	e.pmu.Lock()
	delete(e.pending, key)
	e.pmu.Unlock()
}

func (e *Engine) logFrame(dir log.Direction, cat log.Category, frame []byte) {
	e.logger.Log(log.Event{
		Timestamp: time.Now(),
		EngineID:  e.id,
		Direction: dir,
		Category:  cat,
		Frame: &log.FrameEvent{
			Header: frame[0],
			Addr:   frame[1],
			Opcode: frame[2],
			Data:   frame,
		},
	})
}

func (e *Engine) logRetry(attempt int, delay time.Duration) {
	e.logger.Log(log.Event{
		Timestamp: time.Now(),
		EngineID:  e.id,
		Direction: log.DirectionOut,
		Category:  log.CategoryRetry,
		Retry:     &log.RetryEvent{Attempt: attempt, Delay: delay},
	})
}

func (e *Engine) logError(err error, context string) {
	e.logger.Log(log.Event{
		Timestamp: time.Now(),
		EngineID:  e.id,
		Direction: log.DirectionIn,
		Category:  log.CategoryError,
		Error:     &log.ErrorEvent{Message: err.Error(), Context: context},
	})
}
