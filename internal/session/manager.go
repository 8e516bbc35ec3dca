package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/cache"
	"github.com/Shahriyor2077/ayoqsh-console/internal/notify"
)

// Key is the cache slot holding the authenticated user.
var Key = cache.NewKey("/api/auth/me", nil)

// Manager owns login, logout and session resolution. At most one credential
// is held at a time.
type Manager struct {
	api      *api.Client
	store    *Store
	cache    *cache.Store
	notifier notify.Notifier
	ttl      time.Duration
	maxStale time.Duration
	now      func() time.Time
}

// NewManager wires the manager. ttl is the freshness window of the session
// identity; maxStale bounds how long the optimistic fallback may outlive a
// failing validation endpoint before the session is forced out.
func NewManager(client *api.Client, store *Store, cacheStore *cache.Store, notifier notify.Notifier, ttl, maxStale time.Duration) *Manager {
	return &Manager{
		api:      client,
		store:    store,
		cache:    cacheStore,
		notifier: notifier,
		ttl:      ttl,
		maxStale: maxStale,
		now:      time.Now,
	}
}

// Login authenticates and publishes the new session. Any prior credential is
// cleared first so a failed attempt can never keep a stale token around.
func (m *Manager) Login(ctx context.Context, username, password string) (*api.User, error) {
	if err := m.store.Clear(); err != nil {
		return nil, fmt.Errorf("sessiya tozalanmadi: %w", err)
	}

	resp, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.notifier.Error("Kirish muvaffaqiyatsiz", err.Error())
		return nil, err
	}

	if err := m.store.SetToken(resp.AccessToken); err != nil {
		return nil, err
	}
	user := resp.User
	if err := m.store.SetUser(&user); err != nil {
		return nil, err
	}
	_ = m.store.SetLastValidated(m.now())

	m.cache.SetValue(Key, &user)
	m.notifier.Success("Xush kelibsiz!", user.DisplayName()+" sifatida kirdingiz")
	return &user, nil
}

// Logout invalidates the remote session best-effort, then always clears the
// local credential and the whole cache: every cached value is scoped to the
// actor that fetched it.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("serverdagi sessiyani yopib bo'lmadi")
	}

	if err := m.store.Clear(); err != nil {
		return err
	}
	m.cache.ClearAll()
	m.notifier.Success("Chiqildi", "Keyingi safar ko'rishguncha!")
	return nil
}

// Current resolves the session user. With no usable credential it answers
// immediately without touching the network. Otherwise the persisted snapshot
// seeds the answer while the credential is validated against /api/auth/me:
// a 401 clears everything, any other failure keeps the optimistic snapshot
// until it exceeds the staleness ceiling.
func (m *Manager) Current(ctx context.Context) (*api.User, error) {
	if m.Token() == "" {
		// An orphaned snapshot without a credential is invalid state.
		if m.store.User() != nil {
			_ = m.store.Clear()
		}
		return nil, nil
	}

	return cache.GetAs(ctx, m.cache, Key, m.ttl, func(ctx context.Context) (*api.User, error) {
		return m.validate(ctx)
	})
}

// Seed returns the best immediately-available user: the cached session value
// when present, else the persisted snapshot. May be stale.
func (m *Manager) Seed() *api.User {
	if v, ok := m.cache.Snapshot(Key); ok {
		if u, ok := v.(*api.User); ok {
			return u
		}
	}
	return m.store.User()
}

// Token returns the persisted credential after expiry triage.
func (m *Manager) Token() string {
	return usableToken(m.store.Token(), m.now())
}

// TokenSource adapts a store into the API client's credential callback,
// applying the same expiry triage as the manager.
func TokenSource(store *Store) func() string {
	return func() string {
		return usableToken(store.Token(), time.Now())
	}
}

// usableToken treats a well-formed JWT already past its expiry as absent,
// skipping a doomed round-trip. Opaque tokens pass through; signature
// validity stays the server's call.
func usableToken(tok string, now time.Time) string {
	if tok == "" {
		return ""
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
			return ""
		}
	}
	return tok
}

func (m *Manager) validate(ctx context.Context) (*api.User, error) {
	u, err := m.api.Me(ctx)
	if err == nil {
		_ = m.store.SetUser(u)
		_ = m.store.SetLastValidated(m.now())
		return u, nil
	}

	if errors.Is(err, api.ErrUnauthorized) {
		_ = m.store.Clear()
		return nil, nil
	}

	// Transient failure: availability over strict freshness, within bounds.
	if stored := m.store.User(); stored != nil {
		last := m.store.LastValidated()
		if m.maxStale > 0 && !last.IsZero() && m.now().Sub(last) > m.maxStale {
			log.Warn().Time("last_validated", last).Msg("sessiya tasdiqlanmagani uchun yopildi")
			_ = m.store.Clear()
			return nil, err
		}
		log.Warn().Err(err).Msg("sessiya tekshiruvi vaqtincha ishlamadi, saqlangan profil ishlatildi")
		return stored, nil
	}
	return nil, err
}
