package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if store.Token() != "" || store.User() != nil {
		t.Fatal("fresh store not empty")
	}

	if err := store.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	u := &api.User{ID: 3, Username: "botir", Role: api.RoleOperator}
	if err := store.SetUser(u); err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	if err := store.SetLastValidated(now); err != nil {
		t.Fatal(err)
	}

	if store.Token() != "tok" {
		t.Fatalf("token = %q", store.Token())
	}
	if got := store.User(); got == nil || got.Username != "botir" {
		t.Fatalf("user = %+v", got)
	}
	if got := store.LastValidated(); got.Unix() != now.Unix() {
		t.Fatalf("lastValidated = %v, want %v", got, now)
	}
}

func TestStoreClearRemovesEverythingTogether(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetUser(&api.User{ID: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetLastValidated(time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if store.Token() != "" || store.User() != nil || !store.LastValidated().IsZero() {
		t.Fatal("clear left residue")
	}
	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
}

func TestStoreCorruptSnapshotReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, profileFile), []byte("{buzilgan"), 0o600); err != nil {
		t.Fatal(err)
	}
	if store.User() != nil {
		t.Fatal("corrupt snapshot surfaced as a user")
	}
}
