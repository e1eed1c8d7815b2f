package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
)

// RequestKind names the external call a Request performs
type RequestKind string

const (
	RequestPersist RequestKind = "persist"
	RequestResume  RequestKind = "resume"
	RequestSuspend RequestKind = "suspend"
)

// Request is a call to an external collaborator issued by the capture
// state machine. The state machine never waits for it to complete.
type Request struct {
	Binding   domain.Binding
	Kind      RequestKind
	SessionID string
	Slot      domain.SlotName

	run func(ctx context.Context) (domain.Binding, error)
}

// Outcome reports how a Request went
type Outcome struct {
	Binding   domain.Binding // confirmed binding for persist requests
	Err       error
	Kind      RequestKind
	SessionID string
	Slot      domain.SlotName
}

// OK reports whether the request succeeded
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Dispatcher issues requests without blocking the caller on their result
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request)
}

// execute runs a request and logs its outcome
func execute(ctx context.Context, req Request) Outcome {
	outcome := Outcome{
		Binding:   req.Binding,
		Kind:      req.Kind,
		SessionID: req.SessionID,
		Slot:      req.Slot,
	}
	if req.run == nil {
		return outcome
	}

	confirmed, err := req.run(ctx)
	if err != nil {
		outcome.Err = err
		logging.Logger.Warn("Request failed",
			"kind", req.Kind, "session_id", req.SessionID, "slot", req.Slot, "error", err)
		return outcome
	}
	if !confirmed.IsEmpty() {
		outcome.Binding = confirmed
	}

	logging.Logger.Debug("Request completed", "kind", req.Kind, "session_id", req.SessionID, "slot", req.Slot)
	return outcome
}

// outcomeBuffer is how many outcomes a SerialDispatcher keeps for a slow reader
const outcomeBuffer = 64

// SerialDispatcher runs requests one at a time, in the order they were
// dispatched, on a single worker goroutine. Dispatch never blocks.
type SerialDispatcher struct {
	group    errgroup.Group
	outcomes chan Outcome

	mu     sync.Mutex
	closed bool
	queue  []queued
	wake   chan struct{}
}

type queued struct {
	ctx context.Context
	req Request
}

// NewSerialDispatcher creates and starts a SerialDispatcher
func NewSerialDispatcher() *SerialDispatcher {
	d := &SerialDispatcher{
		outcomes: make(chan Outcome, outcomeBuffer),
		wake:     make(chan struct{}, 1),
	}
	d.group.Go(d.loop)
	return d
}

// Dispatch queues a request. The request keeps the values of ctx but not its
// cancellation, so a resume queued during teardown still runs.
// After Close, requests run inline.
func (d *SerialDispatcher) Dispatch(ctx context.Context, req Request) {
	ctx = context.WithoutCancel(ctx)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.publish(execute(ctx, req))
		return
	}
	d.queue = append(d.queue, queued{ctx: ctx, req: req})
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Outcomes delivers the result of every request
func (d *SerialDispatcher) Outcomes() <-chan Outcome {
	return d.outcomes
}

// Close runs whatever is still queued and stops the worker
func (d *SerialDispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	return d.group.Wait()
}

func (d *SerialDispatcher) loop() error {
	for range d.wake {
		for {
			item, ok, done := d.next()
			if done {
				return nil
			}
			if !ok {
				break
			}
			d.publish(execute(item.ctx, item.req))
		}
	}
	return nil
}

// next pops the oldest request. done is true once the dispatcher is closed
// and the queue is drained.
func (d *SerialDispatcher) next() (item queued, ok bool, done bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.queue) == 0 {
		return queued{}, false, d.closed
	}
	item = d.queue[0]
	d.queue = d.queue[1:]
	return item, true, false
}

func (d *SerialDispatcher) publish(outcome Outcome) {
	select {
	case d.outcomes <- outcome:
	default:
		logging.Logger.Warn("Outcome dropped, nobody is reading",
			"kind", outcome.Kind, "session_id", outcome.SessionID, "ok", outcome.OK())
	}
}

// InlineDispatcher runs every request synchronously inside Dispatch.
// Used by one-shot CLI commands and tests.
type InlineDispatcher struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// NewInlineDispatcher creates an InlineDispatcher
func NewInlineDispatcher() *InlineDispatcher {
	return &InlineDispatcher{}
}

// Dispatch runs the request and records its outcome
func (d *InlineDispatcher) Dispatch(ctx context.Context, req Request) {
	outcome := execute(ctx, req)

	d.mu.Lock()
	d.outcomes = append(d.outcomes, outcome)
	d.mu.Unlock()
}

// Outcomes returns the outcomes recorded so far, oldest first
func (d *InlineDispatcher) Outcomes() []Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Outcome, len(d.outcomes))
	copy(out, d.outcomes)
	return out
}
