// Package store persists a core.Graph as a single JSON object mapping each
// node label to its neighbor->cost map, and can hot-reload it when the file
// changes on disk.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// fileMode is the permission of the saved data file.
const fileMode fs.FileMode = 0o644

// ErrMalformed is returned when the data file is not an object of objects of integers.
var ErrMalformed = errors.New("store: malformed graph data")

// Store reads and writes one data file.
type Store struct {
	path   string
	logger zerolog.Logger

	mu          sync.Mutex
	lastWritten []byte // last bytes this Store wrote or read, to ignore its own file events
}

// New returns a Store for path.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Encode serializes an adjacency map in the persisted layout.
func Encode(adj map[string]map[string]int64) ([]byte, error) {
	data, err := json.Marshal(adj)
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}

	return data, nil
}

// Decode parses the persisted layout. Symmetry is not checked: the file is
// trusted to hold a graph this program wrote. A null neighbor map is read as
// an isolated node.
func Decode(data []byte) (map[string]map[string]int64, error) {
	var adj map[string]map[string]int64
	if err := json.Unmarshal(data, &adj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if adj == nil {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}
	for label, inner := range adj {
		if inner == nil {
			adj[label] = map[string]int64{}
		}
	}

	return adj, nil
}

// Save writes g to the data file, replacing it atomically.
func (s *Store) Save(g *core.Graph) error {
	data, err := Encode(g.Adjacency())
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("store: chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", tmpName, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("store: rename to %s: %w", s.path, err)
	}
	s.lastWritten = data
	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("graph saved")

	return nil
}

// Load replaces the contents of g with the data file. A missing file is not
// an error: Load reports false and leaves g unchanged.
func (s *Store) Load(g *core.Graph) (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", s.path).Msg("no data file, nothing loaded")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	if err := s.apply(g, data); err != nil {
		return false, err
	}

	return true, nil
}

// apply decodes data into g and remembers it as the current file content.
func (s *Store) apply(g *core.Graph, data []byte) error {
	adj, err := Decode(data)
	if err != nil {
		return fmt.Errorf("store: load %s: %w", s.path, err)
	}
	g.Replace(adj)

	s.mu.Lock()
	s.lastWritten = data
	s.mu.Unlock()
	s.logger.Debug().Str("path", s.path).Int("nodes", len(adj)).Msg("graph loaded")

	return nil
}

// unchanged reports whether data is what this Store last wrote or read.
func (s *Store) unchanged(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastWritten != nil && bytes.Equal(s.lastWritten, data)
}
