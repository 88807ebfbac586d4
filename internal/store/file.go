package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// FileStore keeps overrides in a single JSON object of week key to person id,
// the same shape the browser roster kept in local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, week entity.WeekKey) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, err := s.read()
	if err != nil {
		return 0, false, err
	}
	id, ok := overrides[week]
	return id, ok, nil
}

func (s *FileStore) Set(_ context.Context, week entity.WeekKey, personID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, err := s.read()
	if err != nil {
		return err
	}
	overrides[week] = personID
	return s.write(overrides)
}

func (s *FileStore) SetMany(_ context.Context, batch map[entity.WeekKey]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, err := s.read()
	if err != nil {
		return err
	}
	for week, id := range batch {
		overrides[week] = id
	}
	return s.write(overrides)
}

func (s *FileStore) Remove(_ context.Context, week entity.WeekKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := overrides[week]; !ok {
		return nil
	}
	delete(overrides, week)
	return s.write(overrides)
}

func (s *FileStore) List(_ context.Context) (map[entity.WeekKey]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// read drops entries whose value is not an integer (or a string holding one).
func (s *FileStore) read() (map[entity.WeekKey]int, error) {
	overrides := make(map[entity.WeekKey]int)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return overrides, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}
	if len(data) == 0 {
		return overrides, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file %s: %w", s.path, err)
	}

	for week, value := range raw {
		if id, ok := parseID(value); ok {
			overrides[entity.WeekKey(week)] = id
		}
	}
	return overrides, nil
}

func (s *FileStore) write(overrides map[entity.WeekKey]int) error {
	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode overrides: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create overrides dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".overrides-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write overrides: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write overrides: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace overrides file: %w", err)
	}
	return nil
}

func parseID(value json.RawMessage) (int, bool) {
	var id int
	if err := json.Unmarshal(value, &id); err == nil {
		return id, true
	}

	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return 0, false
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return id, true
}
