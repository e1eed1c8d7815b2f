package services

import (
	"context"
	"sync"

	"github.com/renato0307/keycap/internal/logging"
)

// subscriberBuffer is how many outcomes a slow subscriber may lag behind
const subscriberBuffer = 16

// OutcomeHub fans dispatcher outcomes out to every subscriber, so several
// terminals sharing one CaptureManager all see saves and failures
type OutcomeHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Outcome
}

// NewOutcomeHub creates an empty OutcomeHub
func NewOutcomeHub() *OutcomeHub {
	return &OutcomeHub{subs: make(map[int]chan Outcome)}
}

// Run forwards outcomes from src until src is closed or ctx is done,
// then closes every subscriber channel
func (h *OutcomeHub) Run(ctx context.Context, src <-chan Outcome) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case outcome, ok := <-src:
			if !ok {
				return
			}
			h.publish(outcome)
		}
	}
}

// Subscribe registers a new subscriber. Call the returned function to leave.
func (h *OutcomeHub) Subscribe() (<-chan Outcome, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Outcome, subscriberBuffer)
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
}

func (h *OutcomeHub) publish(outcome Outcome) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- outcome:
		default:
			logging.Logger.Warn("Subscriber is not keeping up, outcome dropped", "subscriber", id, "kind", outcome.Kind)
		}
	}
}

func (h *OutcomeHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
