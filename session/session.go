// Package session holds the editing draft of a portfolio and commits it to a
// PortfolioStore with a bounded save call.
//
// A Session assumes a single writer. It serialises its own callers but does
// not reconcile edits made elsewhere to the same portfolio; the last save
// wins.
package session

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
)

// State is the lifecycle of a session.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateSaving  State = "saving"
)

// DefaultSaveTimeout bounds a save when Config.SaveTimeout is zero.
const DefaultSaveTimeout = 10 * time.Second

var (
	// ErrSaveInProgress rejects draft mutations while a save is in flight.
	ErrSaveInProgress = errors.New("go-portfolio: save in progress")
	// ErrNotLoaded rejects operations before a portfolio was loaded.
	ErrNotLoaded = errors.New("go-portfolio: session has no loaded portfolio")
	// ErrMissingStore occurs when no PortfolioStore was supplied.
	ErrMissingStore = errors.New("go-portfolio: missing portfolio store")
)

// Config wires a session.
type Config struct {
	Store       types.PortfolioStore
	SaveTimeout time.Duration
	Clock       types.Clock
	Logger      types.Logger
	Hooks       types.Hooks
	SectionIDs  sections.IDSource
}

// Session is an editing session over one portfolio draft.
type Session struct {
	mu      sync.Mutex
	store   types.PortfolioStore
	timeout time.Duration
	clock   types.Clock
	logger  types.Logger
	hooks   types.Hooks
	manager *sections.Manager

	state State
	draft *types.Portfolio
	// invalid holds validation errors returned by the store, keyed by field.
	invalid map[string]error
}

// New builds an idle session.
func New(cfg Config) (*Session, error) {
	if cfg.Store == nil {
		return nil, ErrMissingStore
	}
	timeout := cfg.SaveTimeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}
	ids := cfg.SectionIDs
	if ids == nil {
		ids = sections.NewClockIDSource(clock)
	}
	return &Session{
		store:   cfg.Store,
		timeout: timeout,
		clock:   clock,
		logger:  logger,
		hooks:   cfg.Hooks,
		manager: sections.NewManager(ids),
		state:   StateIdle,
		invalid: map[string]error{},
	}, nil
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() (types.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return types.Portfolio{}, ErrNotLoaded
	}
	return s.draft.Clone(), nil
}

// Load fetches the owner's portfolio and makes it the draft.
func (s *Session) Load(ctx context.Context, ownerToken string) error {
	s.mu.Lock()
	if s.state == StateSaving {
		s.mu.Unlock()
		return ErrSaveInProgress
	}
	previous := s.state
	s.state = StateLoading
	s.mu.Unlock()

	portfolio, err := s.store.LoadPortfolio(ctx, ownerToken)
	if err == nil && portfolio == nil {
		err = types.ErrPortfolioNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = previous
		if s.draft == nil {
			s.state = StateIdle
		}
		s.logger.Error("portfolio load failed", err)
		return err
	}
	loaded := portfolio.Clone()
	s.draft = &loaded
	s.invalid = map[string]error{}
	s.state = StateReady
	s.logger.Debug("portfolio loaded", "portfolio_id", loaded.ID, "version", loaded.Version)
	return nil
}

// FieldErrors returns the outstanding validation errors keyed by field.
func (s *Session) FieldErrors() map[string]error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]error, len(s.invalid))
	for k, v := range s.invalid {
		out[k] = v
	}
	return out
}

// CheckSlug asks the store whether slug is free.
func (s *Session) CheckSlug(ctx context.Context, slug string) (bool, error) {
	return s.store.CheckSlugAvailable(ctx, strings.TrimSpace(slug))
}

// mutate applies fn to the draft under the lock. field names the part of
// the draft fn touches; outstanding validation errors under it are cleared
// once fn succeeds.
func (s *Session) mutate(field string, fn func(draft *types.Portfolio) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return err
	}
	if err := fn(s.draft); err != nil {
		return err
	}
	s.clearFieldLocked(field)
	return nil
}

func (s *Session) writableLocked() error {
	switch s.state {
	case StateSaving:
		return ErrSaveInProgress
	case StateReady:
		return nil
	}
	return ErrNotLoaded
}

func (s *Session) clearFieldLocked(field string) {
	for key := range s.invalid {
		if fieldOverlaps(key, field) {
			delete(s.invalid, key)
		}
	}
}

func fieldOverlaps(a, b string) bool {
	return a == b || strings.HasPrefix(a, b+".") || strings.HasPrefix(b, a+".")
}

// firstInvalidLocked returns the outstanding error for the lexically first
// field so repeated saves report the same error.
func (s *Session) firstInvalidLocked() error {
	if len(s.invalid) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.invalid))
	for key := range s.invalid {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return s.invalid[keys[0]]
}
