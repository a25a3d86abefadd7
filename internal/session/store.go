package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/medtracker/medtracker-go/internal/model"
)

// MemoryStore holds the session in process memory only. Used by tests
// and by contexts without persistent client storage, where session
// reads must succeed with empty state instead of failing.
type MemoryStore struct {
	mu  sync.Mutex
	rec Record
	set bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return Record{}, nil
	}
	return s.rec, nil
}

func (s *MemoryStore) Save(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = Record{}
	s.set = false
	return nil
}

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileStore persists the session as two files under dir, mirroring the
// web app's two storage keys. Files are written 0600.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed. An empty dir selects
// <user config dir>/medtracker.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "medtracker")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load() (Record, error) {
	var rec Record

	b, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, err
	}
	rec.Token = strings.TrimSpace(string(b))

	ub, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err == nil {
		var user model.User
		if jsonErr := json.Unmarshal(ub, &user); jsonErr == nil {
			rec.User = user
		}
	}
	return rec, nil
}

func (s *FileStore) Save(rec Record) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(rec.Token), 0600); err != nil {
		return err
	}
	ub, err := json.Marshal(rec.User)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), ub, 0600)
}

func (s *FileStore) Clear() error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
