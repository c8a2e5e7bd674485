// Package store persists the whole marketplace state as one JSON document on
// local disk. Every mutation rewrites the full document; a write either lands
// completely (temp file + rename) or the previous document stays intact.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const schemaVersion = 1

// Store serialises all access to the document behind one RWMutex. Update
// works on a clone, so a mutation that fails to persist never becomes
// visible to readers.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  *Document
}

// Open loads the document from path, or seeds a fresh catalog when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		doc := &Document{}
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", path, err)
		}
		if doc.SchemaVersion == 0 {
			doc.SchemaVersion = schemaVersion
		}
		s.doc = doc
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", path).Msg("data file missing, seeding catalog")
		s.doc = seedDocument()
		if err := s.write(s.doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	return s, nil
}

// View runs fn with read access to the document. fn must not retain or
// mutate anything it is handed.
func (s *Store) View(fn func(doc *Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

// Update clones the document, applies fn and persists the clone. The clone
// replaces the live document only after the write succeeds, so neither an fn
// error nor a failed write leaves memory ahead of disk.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone, err := s.doc.clone()
	if err != nil {
		return err
	}
	if err := fn(clone); err != nil {
		return err
	}
	if err := s.write(clone); err != nil {
		return err
	}
	s.doc = clone
	return nil
}

func (s *Store) write(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}
