package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fdatrack/fdatrack/internal/client/captcha"
	"github.com/fdatrack/fdatrack/internal/client/models"
	"github.com/fdatrack/fdatrack/internal/client/token"
	"github.com/fdatrack/fdatrack/internal/logging"
)

// State of the session within this process.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Backend is the slice of the API client the lifecycle needs. Login is the
// one unauthenticated call; Logout is advisory.
type Backend interface {
	Login(ctx context.Context, email, password, captchaProof string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Service is the session lifecycle controller: the only component permitted
// to transition session state or write to the Store.
//
// UI code observes authentication changes through Subscribe rather than by
// polling storage.
type Service struct {
	store       *Store
	backend     Backend
	challenge   captcha.Provider
	challengeTO time.Duration
	log         logging.Logger

	mu          sync.Mutex
	state       State
	repaired    bool
	subscribers []func(authenticated bool)
}

func NewService(store *Store, backend Backend, challenge captcha.Provider, challengeTimeout time.Duration, log logging.Logger) *Service {
	return &Service{
		store:       store,
		backend:     backend,
		challenge:   challenge,
		challengeTO: challengeTimeout,
		log:         log.With("component", "session"),
		state:       StateAnonymous,
	}
}

// Subscribe registers an observer of the authenticated flag. Observers are
// invoked after every state transition, outside the service lock.
func (s *Service) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	subs := make([]func(bool), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	authenticated := state == StateAuthenticated
	for _, fn := range subs {
		fn(authenticated)
	}
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Profile returns the cached identity, if any.
func (s *Service) Profile(ctx context.Context) (*models.Profile, bool, error) {
	return s.store.ReadProfile(ctx)
}

// Login authenticates against the backend and persists the session.
//
// A token that cannot be decoded is never persisted: the store keeps
// whatever it held before the call. A login attempted while another is in
// flight is simply a fresh attempt; the UI is expected to disable the
// submit path while pending.
func (s *Service) Login(ctx context.Context, email, password string) error {
	s.setState(StateAuthenticating)

	proof, err := s.obtainChallengeProof(ctx)
	if err != nil {
		s.setState(StateAnonymous)
		return err
	}

	rawToken, err := s.backend.Login(ctx, email, password, proof)
	if err != nil {
		s.setState(StateAnonymous)
		return err
	}

	claims, err := token.Decode(rawToken)
	if err != nil {
		s.log.Warn(ctx, "login returned an undecodable token, refusing to persist")
		s.setState(StateAnonymous)
		return err
	}

	if err := s.store.WriteToken(ctx, rawToken); err != nil {
		s.setState(StateAnonymous)
		return err
	}
	if err := s.store.WriteProfile(ctx, profileFromClaims(claims)); err != nil {
		s.setState(StateAnonymous)
		return err
	}

	s.log.Info(ctx, "logged in", "email", claims.Email)
	s.setState(StateAuthenticated)
	return nil
}

// obtainChallengeProof waits for the challenge provider to become ready,
// bounded by the configured timeout so a provider that never loads fails
// the login instead of hanging it.
func (s *Service) obtainChallengeProof(ctx context.Context) (string, error) {
	readyCtx, cancel := context.WithTimeout(ctx, s.challengeTO)
	defer cancel()

	if err := s.challenge.Ready(readyCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", captcha.ErrChallengeUnavailable
		}
		return "", err
	}
	return s.challenge.Token(ctx, "login")
}

// Logout ends the session. The server-side logout call is best-effort:
// its failure is logged and discarded, never blocking local teardown.
// Safe to invoke repeatedly, including concurrently.
func (s *Service) Logout(ctx context.Context) error {
	if rawToken, ok, err := s.store.ReadToken(ctx); err == nil && ok {
		if err := s.backend.Logout(ctx, rawToken); err != nil {
			s.log.Warn(ctx, "server-side logout failed, proceeding with local teardown", "error", err)
		}
	}

	err := s.store.ClearAll(ctx)
	s.setState(StateAnonymous)
	if err != nil {
		return err
	}

	s.log.Info(ctx, "logged out")
	return nil
}

// Restore rebuilds the session view from persisted storage. Called once at
// startup.
//
// A persisted token is trusted as-is: no validation round-trip happens
// here, and a revoked token is only discovered on the first authenticated
// request that comes back 401. When the active flag claims a session but
// the profile is missing (storage partially cleared externally), the
// profile is re-derived from the token — at most once per process; a token
// that is itself absent or undecodable tears the remainder down.
func (s *Service) Restore(ctx context.Context) error {
	rawToken, ok, err := s.store.ReadToken(ctx)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn(ctx, "persisted token unreadable, clearing session", "error", err)
		}
		return s.teardownRemainder(ctx)
	}

	if _, has, err := s.store.ReadProfile(ctx); err != nil || !has {
		s.mu.Lock()
		alreadyRepaired := s.repaired
		s.repaired = true
		s.mu.Unlock()
		if alreadyRepaired {
			return s.teardownRemainder(ctx)
		}

		claims, decodeErr := token.Decode(rawToken)
		if decodeErr != nil {
			s.log.Warn(ctx, "persisted token undecodable, clearing session")
			return s.teardownRemainder(ctx)
		}
		if err := s.store.WriteProfile(ctx, profileFromClaims(claims)); err != nil {
			return err
		}
		s.log.Info(ctx, "rebuilt cached profile from persisted token")
	}

	s.setState(StateAuthenticated)
	return nil
}

// teardownRemainder clears any inconsistent leftovers (flag or profile
// without a token) and lands in the anonymous state.
func (s *Service) teardownRemainder(ctx context.Context) error {
	active, _ := s.store.Active(ctx)
	_, hasProfile, _ := s.store.ReadProfile(ctx)
	if active || hasProfile {
		s.log.Warn(ctx, "inconsistent session remainder found, clearing")
		if err := s.store.ClearAll(ctx); err != nil {
			return err
		}
	}
	s.setState(StateAnonymous)
	return nil
}

func profileFromClaims(c *token.Claims) *models.Profile {
	return &models.Profile{
		ID:           c.Sub,
		Email:        c.Email,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		IsSubscribed: c.IsSubscribed,
	}
}
