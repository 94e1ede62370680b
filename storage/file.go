package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/JC2405/medicitas-client/models"
)

// FileStore persists the session entries as a single JSON file on disk, the
// Go analogue of the device-local storage the mobile app uses. Writes go
// through a temp file and rename so a crash cannot leave a half-written
// session behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileEntries struct {
	Token string          `json:"userToken,omitempty"`
	User  json.RawMessage `json:"userData,omitempty"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries.Token = token
	return s.write(entries)
}

func (s *FileStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return "", err
	}
	if entries.Token == "" {
		return "", ErrNotFound
	}
	return entries.Token, nil
}

func (s *FileStore) SaveUser(_ context.Context, user *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	entries, err := s.read()
	if err != nil {
		return err
	}
	entries.User = data
	return s.write(entries)
}

func (s *FileStore) User(_ context.Context) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(entries.User) == 0 {
		return nil, ErrNotFound
	}
	var user models.UserProfile
	if err := json.Unmarshal(entries.User, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) read() (*fileEntries, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &fileEntries{}, nil
	}
	if err != nil {
		return nil, err
	}
	var entries fileEntries
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &entries, nil
}

func (s *FileStore) write(entries *fileEntries) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
