// Package session owns the authenticated-identity lifecycle: the persisted
// credential pair, the in-memory identity, and the navigation side effects
// of login and logout.
//
// A Store is constructed explicitly and handed to the parts of the program
// that need it; there is no package-level singleton. The credential pair is
// owned exclusively by the Store — nothing else reads or writes the
// persisted keys.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/movehub/marketplace-client/internal/core/domain"
	"github.com/movehub/marketplace-client/internal/core/ports"
)

// Snapshot is the externally visible session state. Authenticated is true
// iff Identity is present; once Loading is false no intermediate states are
// observable.
type Snapshot struct {
	Identity      *domain.User
	Loading       bool
	Authenticated bool
}

// Result reports the outcome of an operation that is allowed to recover from
// a failed server call. Recovered means the failure was absorbed and local
// teardown still completed; Cause carries the absorbed error for logging.
type Result struct {
	Recovered bool
	Cause     error
}

// Store is the single source of truth for "who is logged in".
type Store struct {
	auth           ports.AuthAPI
	creds          ports.CredentialStore
	nav            ports.Navigator
	log            zerolog.Logger
	googleClientID string

	mu       sync.Mutex
	identity *domain.User
	loading  bool
	subs     []func(Snapshot)

	loadDone sync.Once
}

// Option customises a Store at construction time.
type Option func(*Store)

// WithGoogleClientID enables Google sign-in. When never set, LoginWithGoogle
// fails with domain.ErrGoogleUnavailable instead of reaching the network.
func WithGoogleClientID(id string) Option {
	return func(s *Store) { s.googleClientID = id }
}

// WithLogger sets the store's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a Store in the loading state. Call Initialize once to resolve
// a persisted credential into an identity.
func New(auth ports.AuthAPI, creds ports.CredentialStore, nav ports.Navigator, opts ...Option) *Store {
	s := &Store{
		auth:    auth,
		creds:   creds,
		nav:     nav,
		log:     zerolog.Nop(),
		loading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Identity:      s.identity,
		Loading:       s.loading,
		Authenticated: s.identity != nil,
	}
}

// Subscribe registers fn to run after every identity change. Subscribers are
// invoked synchronously with the post-change snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify publishes snap to all subscribers. Called without the lock held.
func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// Initialize resolves a persisted credential pair into an identity. On any
// failure — unreadable store, partial pair already absent, rejected or
// expired credential — both persisted keys are cleared and the session comes
// up anonymous with Recovered set. Loading flips to false exactly once, here,
// regardless of outcome; login/logout afterwards move directly between
// authenticated and anonymous.
func (s *Store) Initialize(ctx context.Context) Result {
	var res Result

	pair, ok, err := s.creds.Load()
	switch {
	case err != nil:
		res = Result{Recovered: true, Cause: err}
		_ = s.creds.Clear()
	case ok && pair.Complete():
		user, perr := s.auth.Profile(ctx)
		if perr != nil {
			res = Result{Recovered: true, Cause: perr}
			_ = s.creds.Clear()
		} else {
			s.setIdentity(user)
		}
	default:
		// No (or partial) credential: make sure nothing lingers.
		_ = s.creds.Clear()
	}

	s.finishLoading()
	if res.Recovered {
		s.log.Debug().Err(res.Cause).Msg("session recovery: cleared stale credentials")
	}
	return res
}

func (s *Store) finishLoading() {
	s.loadDone.Do(func() {
		s.mu.Lock()
		s.loading = false
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.notify(snap)
	})
}

// Login authenticates with email/password, persists the new credential pair,
// fetches the profile, and signals navigation to the role-specific landing
// page. On failure the error is returned and the previous session — in
// memory and on disk — is left intact.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	pair, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, pair)
}

// LoginWithGoogle authenticates with a Google-issued identity token. roleHint
// is consumed server-side only on first registration. Unavailable when the
// deployment has no Google client ID.
func (s *Store) LoginWithGoogle(ctx context.Context, credential, roleHint string) (*domain.User, error) {
	if s.googleClientID == "" {
		return nil, domain.ErrGoogleUnavailable
	}
	pair, err := s.auth.GoogleLogin(ctx, credential, roleHint)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, pair)
}

// Register creates an account and logs it in, with the same success contract
// as Login. Role-conditional validation is the backend's.
func (s *Store) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	pair, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, pair)
}

// adopt persists a fresh credential pair, fetches the profile, installs the
// identity, and signals navigation.
func (s *Store) adopt(ctx context.Context, pair domain.TokenPair) (*domain.User, error) {
	if err := s.creds.Save(pair); err != nil {
		return nil, err
	}
	user, err := s.auth.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.setIdentity(user)
	s.nav.NavigateTo(LandingRoute(user.UserType))
	return user, nil
}

// Logout notifies the server best-effort, then unconditionally clears the
// persisted pair and the in-memory identity and signals navigation to the
// login page. A failed server call is absorbed into the Result — teardown
// must never be blocked by network state.
func (s *Store) Logout(ctx context.Context) Result {
	var res Result

	pair, ok, _ := s.creds.Load()
	if ok && pair.Refresh != "" {
		if err := s.auth.Logout(ctx, pair.Refresh); err != nil {
			res = Result{Recovered: true, Cause: err}
			s.log.Debug().Err(err).Msg("server logout failed, terminating local session anyway")
		}
	}

	_ = s.creds.Clear()
	s.setIdentity(nil)
	s.nav.NavigateTo(RouteLogin)
	return res
}

// UpdateIdentity shallow-merges partial into the current identity without a
// network call; profile-edit screens use it to avoid a refetch. No-op while
// anonymous.
func (s *Store) UpdateIdentity(partial map[string]any) {
	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return
	}

	merged := mergeUser(s.identity, partial)
	if merged == nil {
		s.mu.Unlock()
		return
	}
	s.identity = merged
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// mergeUser overlays partial onto user field-by-field through a JSON
// round-trip, so key names match the wire format the profile screens use.
func mergeUser(user *domain.User, partial map[string]any) *domain.User {
	raw, err := json.Marshal(user)
	if err != nil {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	for k, v := range partial {
		fields[k] = v
	}
	raw, err = json.Marshal(fields)
	if err != nil {
		return nil
	}
	var merged domain.User
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil
	}
	return &merged
}

func (s *Store) setIdentity(user *domain.User) {
	s.mu.Lock()
	s.identity = user
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}
