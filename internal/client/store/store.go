package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Under67/stellar-burgers/internal/client/client"
	"github.com/Under67/stellar-burgers/internal/common"
	"github.com/Under67/stellar-burgers/internal/logging"
)

// Credentials persists the session credentials. credentials.Store
// implements it.
type Credentials interface {
	HasRefreshToken(ctx context.Context) (bool, error)
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, access, refresh, email string) error
	Clear(ctx context.Context) error
}

// Listener receives a copy of the state after every applied action.
type Listener func(State)

type Options struct {
	Client      client.Client
	Credentials Credentials
	Logger      logging.Logger
}

type Store struct {
	client client.Client
	creds  Credentials
	log    logging.Logger

	mu        sync.Mutex
	state     State
	seq       map[operation]uint64
	listeners map[int]Listener
	nextID    int
}

func New(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		client:    opts.Client,
		creds:     opts.Credentials,
		log:       log,
		seq:       make(map[operation]uint64),
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies a local action.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.apply(a)
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// apply reduces a into the state, releases s.mu and notifies listeners.
// The caller must hold s.mu.
func (s *Store) apply(a Action) {
	s.state = reduce(s.state, a)
	snapshot := s.state.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// begin marks op as in flight and returns its sequence number.
func (s *Store) begin(op operation) uint64 {
	s.mu.Lock()
	s.seq[op]++
	n := s.seq[op]
	s.apply(requestStarted{op: op})
	return n
}

// finish applies the completion a of op call n unless a newer call of the
// same operation has started since. It reports whether a was applied.
func (s *Store) finish(ctx context.Context, op operation, n uint64, a Action) bool {
	s.mu.Lock()
	if s.seq[op] != n {
		s.mu.Unlock()
		s.log.Debug(ctx, "stale completion dropped", "op", string(op), "seq", n)
		return false
	}
	s.apply(a)
	return true
}

// fail records err in the slot of op and returns it.
func (s *Store) fail(ctx context.Context, op operation, n uint64, err error, fallback string) error {
	msg := errorMessage(err, fallback)
	s.log.Warn(ctx, "operation failed", "op", string(op), "error", err)
	s.finish(ctx, op, n, requestFailed{op: op, message: msg})
	return err
}

const msgUnavailable = "server unavailable"

func errorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		var ie *inputError
		if errors.As(err, &ie) {
			return ie.msg
		}
		return err.Error()
	case client.Message(err) != "":
		return client.Message(err)
	case errors.Is(err, client.ErrUnavailable):
		return msgUnavailable
	default:
		return fallback
	}
}
