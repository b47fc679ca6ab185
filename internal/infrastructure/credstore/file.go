// Package credstore persists the access/refresh credential pair. The pair is
// written under two fixed keys and treated atomically: a file holding only
// one half reads back as absent, so recovery code never sees a partial pair.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// storedCredentials is the on-disk layout. The key names are fixed; other
// tooling greps for them.
type storedCredentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// FileStore keeps the pair in a JSON file with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. The parent directory is created
// on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the pair. A missing file reports absent without error; a
// partial pair also reports absent.
func (s *FileStore) Load() (domain.TokenPair, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.TokenPair{}, false, nil
	}
	if err != nil {
		return domain.TokenPair{}, false, fmt.Errorf("credstore: read %s: %w", s.path, err)
	}

	var stored storedCredentials
	if err := json.Unmarshal(data, &stored); err != nil {
		return domain.TokenPair{}, false, fmt.Errorf("credstore: parse %s: %w", s.path, err)
	}

	pair := domain.TokenPair{Access: stored.AccessToken, Refresh: stored.RefreshToken}
	if !pair.Complete() {
		return domain.TokenPair{}, false, nil
	}
	return pair, true, nil
}

// Save writes both keys in one write.
func (s *FileStore) Save(pair domain.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("credstore: mkdir: %w", err)
	}
	data, err := json.MarshalIndent(storedCredentials{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("credstore: write %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored pair. Already-absent is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("credstore: remove %s: %w", s.path, err)
	}
	return nil
}

// Token satisfies the transport's TokenSource: the current access token, or
// none when the stored pair is absent or unreadable.
func (s *FileStore) Token() (string, bool) {
	pair, ok, err := s.Load()
	if err != nil || !ok {
		return "", false
	}
	return pair.Access, true
}
