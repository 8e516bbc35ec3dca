// Package session owns the authenticated session: a file-backed store for
// the bearer credential and profile snapshot, and a manager that resolves the
// current user optimistically while revalidating against the remote API.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
)

const (
	tokenFile     = "token"
	profileFile   = "ayoqsh_user.json"
	validatedFile = "last_validated"
)

// Store persists session state across console runs. The token and the profile
// snapshot live in separate files but are always cleared together.
type Store struct {
	dir string
}

// NewStore creates the state directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Token returns the persisted bearer credential, or "".
func (s *Store) Token() string {
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// SetToken persists the credential. An empty token removes the file.
func (s *Store) SetToken(token string) error {
	path := filepath.Join(s.dir, tokenFile)
	if token == "" {
		return removeIfExists(path)
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// User returns the persisted profile snapshot, or nil when absent or corrupt.
// A corrupt snapshot is indistinguishable from no snapshot, as in the
// original console.
func (s *Store) User() *api.User {
	raw, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		return nil
	}
	var u api.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// SetUser persists the profile snapshot. A nil user removes the file.
func (s *Store) SetUser(u *api.User) error {
	path := filepath.Join(s.dir, profileFile)
	if u == nil {
		return removeIfExists(path)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// LastValidated returns when the credential last passed remote validation.
// Zero time when never validated.
func (s *Store) LastValidated() time.Time {
	raw, err := os.ReadFile(filepath.Join(s.dir, validatedFile))
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(string(raw)))
	if err != nil {
		return time.Time{}
	}
	return t
}

// SetLastValidated records a successful remote validation.
func (s *Store) SetLastValidated(t time.Time) error {
	path := filepath.Join(s.dir, validatedFile)
	return os.WriteFile(path, []byte(t.UTC().Format(time.RFC3339)), 0o600)
}

// Clear removes the credential, the snapshot and the validation mark.
func (s *Store) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFile, profileFile, validatedFile} {
		if err := removeIfExists(filepath.Join(s.dir, name)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
