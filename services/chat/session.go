// Package chat implements the Ask AI conversation: an append-only message log
// with at most one research request in flight.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"legal_ai_site/logger"
	"legal_ai_site/services/broadcast"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Greeting seeds every new session.
const Greeting = "Hello! I'm your AI legal assistant. I can help you with legal research, document analysis, case law, and general legal questions. How can I assist you today?"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        string
	Role      Role
	Content   string
	RichText  bool
	CreatedAt time.Time
}

type State int

const (
	StateIdle State = iota
	StateSending
)

func (s State) String() string {
	if s == StateSending {
		return "sending"
	}
	return "idle"
}

// Researcher answers a legal research query.
type Researcher interface {
	Research(ctx context.Context, query string) (string, error)
}

// Snapshot is a consistent copy of the session.
type Snapshot struct {
	Messages []Message
	State    State
	Input    string
}

// Outcome classifies a finished request.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeStatus    Outcome = "status_error"
	OutcomeTransport Outcome = "transport_error"
	OutcomeFailed    Outcome = "failed"
)

type Option func(*Session)

// WithPrefill seeds the input draft, e.g. from a navigation payload.
func WithPrefill(text string) Option {
	return func(s *Session) {
		s.input = text
	}
}

// WithTarget sets the address quoted in connectivity diagnostics.
func WithTarget(baseURL string) Option {
	return func(s *Session) {
		s.target = baseURL
	}
}

// WithObserver is called once per finished request.
func WithObserver(fn func(Outcome, time.Duration)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

type Session struct {
	ID       string
	client   Researcher
	target   string
	observer func(Outcome, time.Duration)
	now      func() time.Time
	updates  *broadcast.Value[Snapshot]

	mu       sync.Mutex
	messages []Message
	state    State
	input    string
	closed   bool
	done     chan struct{}
	ended    chan struct{}
}

// NewSession starts a session holding only the assistant greeting.
func NewSession(client Researcher, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		client: client,
		now:    time.Now,
		ended:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = []Message{s.newMessage(RoleAssistant, Greeting, false)}
	s.updates = broadcast.New(s.snapshotLocked())
	return s
}

// Submit sends text as a research query. It returns false, leaving the
// session untouched, when text is blank or a request is already pending.
func (s *Session) Submit(text string) bool {
	query := strings.TrimSpace(text)

	s.mu.Lock()
	if query == "" || s.state == StateSending || s.closed {
		s.mu.Unlock()
		return false
	}
	s.messages = append(s.messages, s.newMessage(RoleUser, query, false))
	s.state = StateSending
	s.input = ""
	done := make(chan struct{})
	s.done = done
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.updates.Store(snap)
	go s.send(query, done)
	return true
}

func (s *Session) send(query string, done chan struct{}) {
	defer close(done)

	started := s.now()
	answer, err := s.client.Research(context.Background(), query)
	elapsed := s.now().Sub(started)

	var reply Message
	outcome := OutcomeSucceeded
	if err != nil {
		outcome = Classify(err)
		reply = s.newMessage(RoleAssistant, Diagnose(err, s.target), false)
		logger.WithFields(logrus.Fields{"session": s.ID, "outcome": outcome}).WithError(err).Warn("research request failed")
	} else {
		reply = s.newMessage(RoleAssistant, answer, true)
	}
	if s.observer != nil {
		s.observer(outcome, elapsed)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logger.WithFields(logrus.Fields{"session": s.ID}).Debug("dropping response for closed session")
		return
	}
	s.messages = append(s.messages, reply)
	s.state = StateIdle
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.updates.Store(snap)
}

// Wait blocks until no request is in flight.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetInput replaces the input draft.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.input = text
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.updates.Store(snap)
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the log in display order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Updates publishes a snapshot after every change.
func (s *Session) Updates() *broadcast.Value[Snapshot] {
	return s.updates
}

// Close detaches the session. A response that arrives afterwards is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ended)
}

// Done is closed once the session is closed, so streams can stop without
// polling.
func (s *Session) Done() <-chan struct{} {
	return s.ended
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Messages: append([]Message(nil), s.messages...),
		State:    s.state,
		Input:    s.input,
	}
}

func (s *Session) newMessage(role Role, content string, rich bool) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		RichText:  rich,
		CreatedAt: s.now(),
	}
}
