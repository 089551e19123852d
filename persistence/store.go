// Package persistence stores the survival high score and recent runs across sessions
package persistence

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxHistory bounds the runs kept in the score file, oldest are dropped first
const MaxHistory = 20

// Store is a TOML-backed score keeper
// Safe for concurrent use; the simulation records on the tick owner while drivers read
type Store struct {
	mu   sync.Mutex
	path string
	data ScoreFileDTO
	now  func() time.Time
}

// Open loads the score file at path, a missing file starts empty
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read score file %s", path)
	}

	if _, err := toml.Decode(string(raw), &s.data); err != nil {
		return nil, errors.Wrapf(err, "decode score file %s", path)
	}
	return s, nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Best returns the stored high score
func (s *Store) Best() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Best
}

// History returns recorded runs, newest last
func (s *Store) History() []RunDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RunDTO, len(s.data.History))
	copy(out, s.data.History)
	return out
}

// Record appends a finished run, raises the best when beaten and writes the file
func (s *Store) Record(survived float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if survived > s.data.Best {
		s.data.Best = survived
	}

	s.data.History = append(s.data.History, RunDTO{
		ID:         uuid.NewString(),
		Survived:   survived,
		FinishedAt: s.now().UTC().Truncate(time.Second),
	})
	if over := len(s.data.History) - MaxHistory; over > 0 {
		s.data.History = append(s.data.History[:0], s.data.History[over:]...)
	}

	return s.save()
}

// save writes through a temp file so a crash never leaves a truncated score file
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create score dir %s", dir)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.data); err != nil {
		return errors.Wrap(err, "encode score file")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write score file %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "replace score file %s", s.path)
	}
	return nil
}
