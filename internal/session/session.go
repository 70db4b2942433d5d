// Package session persists the signed-in token and the transient pending
// booking between runs, the way the browser frontend keeps them in local
// storage under fixed key names.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/taipei-trip/trip-cli/internal/models"
)

const sessionFile = "session.json"

// Store is a file-backed session store.
type Store struct {
	dir string
}

// state is the on-disk shape of the session.
type state struct {
	Token          string                 `json:"token,omitempty"`
	PendingBooking *models.BookingRequest `json:"pendingBooking,omitempty"`
}

// NewStore creates a session store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the default session directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trip")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "trip-session")
	}
	return filepath.Join(home, ".config", "trip")
}

// Token returns the stored auth token, or "" when signed out.
func (s *Store) Token() string {
	return s.load().Token
}

// SetToken stores the auth token; an empty token signs out.
func (s *Store) SetToken(token string) error {
	st := s.load()
	st.Token = token
	return s.save(st)
}

// Clear removes the token and any pending booking.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// PendingBooking returns the booking payload stashed before an auth
// redirect, or nil.
func (s *Store) PendingBooking() *models.BookingRequest {
	return s.load().PendingBooking
}

// SetPendingBooking stashes a booking payload; nil clears it.
func (s *Store) SetPendingBooking(req *models.BookingRequest) error {
	st := s.load()
	st.PendingBooking = req
	return s.save(st)
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFile)
}

func (s *Store) load() state {
	var st state
	data, err := os.ReadFile(s.path())
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		// Corrupt session file; treat as signed out.
		return state{}
	}
	return st
}

func (s *Store) save(st state) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	// The token is a credential; keep the file owner-only.
	return os.WriteFile(s.path(), data, 0600)
}
