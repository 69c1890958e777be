package session

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// State is the persisted client state, written as the same flat JSON document
// the vendor app keeps: bearer tokens for both API versions plus the device
// identity sent with login requests.
type State struct {
	Token    string `json:"token"`
	DeviceID string `json:"device_id"`
	TokenV1  string `json:"token_v1"`
}

// Store persists State to a single JSON file, overwritten wholesale on each
// save. Not safe for concurrent writers; the client assumes single-process,
// sequential use.
type Store struct {
	path string
	State
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file if it exists. It reports whether a file was
// found; a present but malformed file is an error.
func (s *Store) Load() (bool, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read state file %s: %w", s.path, err)
	}
	if err := json.Unmarshal(raw, &s.State); err != nil {
		return false, fmt.Errorf("parse state file %s: %w", s.path, err)
	}
	return true, nil
}

// Save writes the current state to the backing file, replacing any previous
// contents.
func (s *Store) Save() error {
	raw, err := json.MarshalIndent(s.State, "", "    ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write state file %s: %w", s.path, err)
	}
	return nil
}

// EnsureDeviceID generates a fresh device identity when none is persisted or
// supplied. The vendor app uses uppercase UUID strings.
func (s *Store) EnsureDeviceID() string {
	if s.DeviceID == "" {
		s.DeviceID = strings.ToUpper(uuid.NewString())
	}
	return s.DeviceID
}
