package session

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "config.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.Token = "tok-v2"
	s.TokenV1 = "tok-v1"
	s.DeviceID = "ABCDEF00-0000-0000-0000-000000000000"

	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded := NewStore(s.Path())
	found, err := loaded.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !found {
		t.Fatal("Load() did not find the saved file")
	}
	if loaded.State != s.State {
		t.Errorf("loaded state %+v, want %+v", loaded.State, s.State)
	}
}

func TestStoreLoadAbsentFile(t *testing.T) {
	s := newTestStore(t)
	found, err := s.Load()
	if err != nil {
		t.Fatalf("Load() of absent file failed: %v", err)
	}
	if found {
		t.Fatal("Load() reported a file that does not exist")
	}
}

func TestStoreLoadMalformedFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write malformed file: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for malformed state file")
	}
}

func TestEnsureDeviceID(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	idA := a.EnsureDeviceID()
	idB := b.EnsureDeviceID()
	if idA == "" || idB == "" {
		t.Fatal("EnsureDeviceID() returned empty id")
	}
	if idA == idB {
		t.Errorf("two fresh stores produced the same device id %q", idA)
	}
	// Uppercase UUID, matching what the vendor app persists.
	for _, r := range idA {
		if r >= 'a' && r <= 'z' {
			t.Fatalf("device id %q contains lowercase characters", idA)
		}
	}
}

func TestEnsureDeviceIDStableAcrossSaveLoad(t *testing.T) {
	s := newTestStore(t)
	id := s.EnsureDeviceID()

	for i := 0; i < 3; i++ {
		if err := s.Save(); err != nil {
			t.Fatalf("Save() cycle %d failed: %v", i, err)
		}
		reloaded := NewStore(s.Path())
		if _, err := reloaded.Load(); err != nil {
			t.Fatalf("Load() cycle %d failed: %v", i, err)
		}
		if got := reloaded.EnsureDeviceID(); got != id {
			t.Fatalf("device id changed after cycle %d: %q != %q", i, got, id)
		}
		s = reloaded
	}
}
