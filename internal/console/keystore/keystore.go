// Package keystore persists the single shared superadmin credential between
// console sessions. Presence of a stored key is the console's only notion of
// being signed in; the key is never inspected, only forwarded.
package keystore

import (
	"os"
	"path/filepath"
	"strings"
)

const keyFileName = "hrms_superadmin_key"

type Store struct {
	path string
}

// New returns a store rooted at dir. An empty dir falls back to the user
// config directory, or the working directory when even that is unavailable.
func New(dir string) *Store {
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "hrms-lite")
		} else {
			dir = "."
		}
	}
	return &Store{path: filepath.Join(dir, keyFileName)}
}

// Get returns the stored credential, or "" when none is stored. Read
// failures read as "not signed in"; there is nothing useful to do with them.
func (s *Store) Get() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// Set persists the credential, replacing any previous one.
func (s *Store) Set(key string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(key), 0o600)
}

// Clear removes the stored credential. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
