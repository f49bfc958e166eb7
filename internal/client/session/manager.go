// Package session owns the client's authentication state: the current user,
// the bearer token pair and the in-flight flag. It hydrates from the
// credential store at startup, talks to the auth endpoints through an
// injected API client and broadcasts every committed change to subscribers.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/releve-app/releve/internal/client/credstore"
	"github.com/releve-app/releve/internal/client/models"
	"github.com/releve-app/releve/internal/logging"
)

// State is the logical session state.
type State int

const (
	// StateHydrating is the initial state, before the credential store has
	// been consulted.
	StateHydrating State = iota
	// StateAnonymous means no session is active.
	StateAnonymous
	// StateAuthenticated means user and tokens are both present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateHydrating:
		return "hydrating"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session handed to subscribers and
// callers. User and Tokens are copies; mutating them has no effect.
type Snapshot struct {
	User    *models.User
	Tokens  *models.TokenPair
	Loading bool

	hydrated bool
}

// State derives the logical state from the snapshot fields.
func (s Snapshot) State() State {
	if !s.hydrated {
		return StateHydrating
	}
	if s.User != nil && s.Tokens != nil {
		return StateAuthenticated
	}
	return StateAnonymous
}

// AuthAPI is the slice of the remote API the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error)
	Register(ctx context.Context, name, email, password string) (*models.User, *models.TokenPair, error)
}

// persistTimeout bounds the background credential-store writes that outlive
// the call that triggered them.
const persistTimeout = 5 * time.Second

// Manager coordinates the session lifecycle. A single mutex guards
// user/tokens/loading so racing operations resolve last-writer-wins rather
// than interleaving partial state.
type Manager struct {
	api   AuthAPI
	store credstore.Store
	log   logging.Logger

	mu       sync.Mutex
	user     *models.User
	tokens   *models.TokenPair
	loading  bool
	hydrated bool

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int

	wg sync.WaitGroup
}

// NewManager builds a manager in the Hydrating state. Call Hydrate before
// serving user actions.
func NewManager(api AuthAPI, store credstore.Store, log logging.Logger) *Manager {
	return &Manager{
		api:     api,
		store:   store,
		log:     log,
		loading: true,
		subs:    make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn to be called with a snapshot after every committed
// state change. The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// State reports the current logical state.
func (m *Manager) State() State {
	return m.Snapshot().State()
}

// AccessToken returns the current bearer token, or "" when anonymous.
// Satisfies api.TokenProvider.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tokens == nil {
		return ""
	}
	return m.tokens.AccessToken
}

// User returns a copy of the current user, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{Loading: m.loading, hydrated: m.hydrated}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	if m.tokens != nil {
		t := *m.tokens
		snap.Tokens = &t
	}
	return snap
}

func (m *Manager) notify() {
	snap := m.Snapshot()

	m.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Hydrate loads a previously persisted session. Both records must be present
// and decodable to land in Authenticated; anything less means Anonymous.
// A read failure is treated as "no session", never as fatal.
func (m *Manager) Hydrate(ctx context.Context) {
	user, tokens, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential store unreadable, starting anonymous", "error", err)
		user, tokens = nil, nil
	}

	if (user == nil) != (tokens == nil) {
		// A half session in storage is never hydrated; drop the leftover key
		// so it does not linger.
		user, tokens = nil, nil
		m.clearStoreAsync()
	}

	m.mu.Lock()
	m.user = user
	m.tokens = tokens
	m.loading = false
	m.hydrated = true
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
	m.notify()
}

// Login authenticates against the remote endpoint. On success both user and
// tokens are committed together and persisted in the background; on any
// failure the session is left exactly as it was. The loading flag is
// released exactly once per call, on every exit path.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	user, tokens, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.commit(ctx, user, tokens), nil
}

// Register creates an account. Same atomicity and failure guarantees as Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	user, tokens, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return m.commit(ctx, user, tokens), nil
}

func (m *Manager) commit(ctx context.Context, user *models.User, tokens *models.TokenPair) *models.User {
	m.mu.Lock()
	u := *user
	t := *tokens
	m.user = &u
	m.tokens = &t
	m.mu.Unlock()
	m.notify()

	m.persistAsync(*user, *tokens)

	out := *user
	return &out
}

// UpdateUser merges the given fields into the current user and schedules a
// write-through of the merged record. No-op when no session is active.
// Tokens are never touched and the server is never contacted: callers are
// expected to have persisted the change remotely already.
func (m *Manager) UpdateUser(upd models.UserUpdate) {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return
	}
	merged := upd.Merge(*m.user)
	m.user = &merged
	m.mu.Unlock()
	m.notify()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.store.SaveUser(ctx, merged); err != nil {
			m.log.Warn(ctx, "failed to persist profile update", "error", err)
		}
	}()
}

// Logout clears the session. Memory is cleared synchronously, storage in the
// background; calling it when already logged out is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.tokens = nil
	m.mu.Unlock()
	m.notify()

	m.clearStoreAsync()
}

// Wait blocks until all background persistence writes have finished. Called
// on shutdown and by tests that assert on the stored state.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) persistAsync(user models.User, tokens models.TokenPair) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.store.Save(ctx, user, tokens); err != nil {
			m.log.Warn(ctx, "failed to persist session, it will not survive a restart", "error", err)
		}
	}()
}

func (m *Manager) clearStoreAsync() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.store.Clear(ctx); err != nil {
			m.log.Warn(ctx, "failed to clear credential store", "error", err)
		}
	}()
}
