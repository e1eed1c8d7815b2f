package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ports"
)

// CaptureManager owns at most one live CaptureSession. Start is a checked
// acquisition: it fails while a session is outstanding, in this process or,
// when a RecorderLock is configured, in any other.
type CaptureManager struct {
	dispatcher Dispatcher
	listener   ports.ListenerController
	lock       ports.RecorderLock
	shortcuts  *ShortcutService

	mu     sync.Mutex
	active *CaptureSession
}

// NewCaptureManager creates a CaptureManager. lock may be nil.
func NewCaptureManager(
	shortcuts *ShortcutService,
	listener ports.ListenerController,
	lock ports.RecorderLock,
	dispatcher Dispatcher,
) *CaptureManager {
	return &CaptureManager{
		dispatcher: dispatcher,
		listener:   listener,
		lock:       lock,
		shortcuts:  shortcuts,
	}
}

// Shortcuts returns the shortcut service the manager edits
func (m *CaptureManager) Shortcuts() *ShortcutService {
	return m.shortcuts
}

// Active returns the live session, or nil
func (m *CaptureManager) Active() *CaptureSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Start opens a capture session for a slot and asks the listener to suspend.
// It returns domain.ErrCaptureInProgress if a session is already recording.
func (m *CaptureManager) Start(ctx context.Context, name domain.SlotName) (*CaptureSession, error) {
	slot, err := m.shortcuts.Slot(name)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		logging.Logger.Warn("Capture already in progress, rejecting start",
			"slot", name, "active_session_id", m.active.id, "active_slot", m.active.slot.Name())
		return nil, domain.ErrCaptureInProgress
	}

	if m.lock != nil {
		acquired, err := m.lock.TryAcquire()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire recorder lock: %w", err)
		}
		if !acquired {
			logging.Logger.Warn("Recorder lock held by another process, rejecting start", "slot", name)
			return nil, fmt.Errorf("%w: another process is recording", domain.ErrCaptureInProgress)
		}
	}

	session := &CaptureSession{
		assembler: domain.NewAssembler(),
		id:        uuid.New().String(),
		manager:   m,
		slot:      slot,
		state:     domain.CaptureRecording,
	}
	m.active = session

	logging.Logger.Info("Capture started", "session_id", session.id, "slot", name, "current", slot.Current())
	m.dispatcher.Dispatch(ctx, m.listenerRequest(RequestSuspend, session))

	return session, nil
}

// Reset restores a slot's default binding and persists it. No capture session
// is needed. A live session editing the same slot is cancelled first.
func (m *CaptureManager) Reset(ctx context.Context, name domain.SlotName) (domain.Binding, error) {
	slot, err := m.shortcuts.Slot(name)
	if err != nil {
		return "", err
	}

	if active := m.Active(); active != nil && active.slot == slot {
		logging.Logger.Info("Cancelling capture before reset", "session_id", active.id, "slot", name)
		active.Close(ctx)
	}

	slot.adopt(slot.Default())
	logging.Logger.Info("Shortcut reset to default", "slot", name, "binding", slot.Default())
	m.dispatcher.Dispatch(ctx, m.shortcuts.persistRequest("", slot, slot.Default()))

	return slot.Default(), nil
}

func (m *CaptureManager) listenerRequest(kind RequestKind, session *CaptureSession) Request {
	req := Request{
		Kind:      kind,
		SessionID: session.id,
		Slot:      session.slot.Name(),
	}
	req.run = func(ctx context.Context) (domain.Binding, error) {
		var err error
		if kind == RequestSuspend {
			err = m.listener.Suspend(ctx)
		} else {
			err = m.listener.Resume(ctx)
		}
		if err != nil {
			return "", fmt.Errorf("failed to %s listener: %w", kind, err)
		}
		return "", nil
	}
	return req
}

// release drops the ownership handle and the recorder lock
func (m *CaptureManager) release(session *CaptureSession) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != session {
		return
	}
	m.active = nil

	if m.lock != nil {
		if err := m.lock.Release(); err != nil {
			logging.Logger.Warn("Failed to release recorder lock", "session_id", session.id, "error", err)
		}
	}
}

// CaptureStep is what a key event did to a session
type CaptureStep struct {
	Display domain.Binding // canonical binding of the held keys
	Result  domain.CaptureResult
	Token   domain.KeyToken
}

// Done reports whether the session ended with this step
func (s CaptureStep) Done() bool {
	return s.Result != domain.CaptureContinued
}

// CaptureSession records one shortcut edit. Key events must be fed in arrival
// order by a single caller.
type CaptureSession struct {
	assembler *domain.Assembler
	id        string
	manager   *CaptureManager
	slot      *Slot

	mu      sync.Mutex
	pending domain.Binding
	state   domain.CaptureState
}

// ID returns the session id used in logs and outcomes
func (s *CaptureSession) ID() string {
	return s.id
}

// Slot returns the slot being edited
func (s *CaptureSession) Slot() *Slot {
	return s.slot
}

// Display returns the canonical binding of the keys held so far
func (s *CaptureSession) Display() domain.Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// State returns the session state
func (s *CaptureSession) State() domain.CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HandleKey feeds one raw key-down event to the session.
// Enter commits the held keys, Escape cancels, anything else is accumulated.
// Once the session has ended it returns domain.ErrSessionClosed.
func (s *CaptureSession) HandleKey(ctx context.Context, rawKey string) (CaptureStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureRecording {
		return CaptureStep{}, domain.ErrSessionClosed
	}

	token := domain.Normalize(rawKey)
	logging.Logger.Debug("Capture key", "session_id", s.id, "raw", rawKey, "token", token)

	switch token {
	case domain.TokenEnter:
		return s.commitLocked(ctx), nil
	case domain.TokenEscape:
		return s.cancelLocked(ctx), nil
	default:
		s.pending = s.assembler.Press(token)
		return CaptureStep{Display: s.pending, Result: domain.CaptureContinued, Token: token}, nil
	}
}

// Close tears the session down. A recording session is cancelled;
// an ended one is left alone.
func (s *CaptureSession) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureRecording {
		return
	}
	logging.Logger.Info("Capture torn down", "session_id", s.id, "slot", s.slot.Name())
	s.cancelLocked(ctx)
}

func (s *CaptureSession) commitLocked(ctx context.Context) CaptureStep {
	s.state = domain.CaptureCommitting
	binding := s.assembler.Canonicalize()

	result := domain.CaptureEmpty
	if !binding.IsEmpty() {
		result = domain.CaptureCommitted
		logging.Logger.Info("Capture committed", "session_id", s.id, "slot", s.slot.Name(), "binding", binding)
		s.manager.dispatcher.Dispatch(ctx, s.manager.shortcuts.persistRequest(s.id, s.slot, binding))
	} else {
		logging.Logger.Info("Capture committed with no keys, nothing to save", "session_id", s.id, "slot", s.slot.Name())
	}

	s.finishLocked(ctx)
	return CaptureStep{Display: binding, Result: result, Token: domain.TokenEnter}
}

func (s *CaptureSession) cancelLocked(ctx context.Context) CaptureStep {
	s.state = domain.CaptureCancelling
	s.assembler.Clear()
	s.pending = ""

	logging.Logger.Info("Capture cancelled", "session_id", s.id, "slot", s.slot.Name())

	s.finishLocked(ctx)
	return CaptureStep{Display: s.slot.Current(), Result: domain.CaptureCancelled, Token: domain.TokenEscape}
}

// finishLocked returns to Idle and issues the single resume of the session
func (s *CaptureSession) finishLocked(ctx context.Context) {
	s.state = domain.CaptureIdle
	s.manager.dispatcher.Dispatch(ctx, s.manager.listenerRequest(RequestResume, s))
	s.manager.release(s)
}
