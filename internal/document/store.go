package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store caches open documents keyed by file path.
//
// Once a document is loaded, subsequent Load calls for the same path return
// the same *Document, including any layers added since. Different spellings
// of the same file (relative vs absolute) are separate entries.
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Load returns the cached document for path, opening it from disk on the
// first request.
func (s *Store) Load(path string) (*Document, error) {
	s.mu.RLock()
	if doc, ok := s.docs[path]; ok {
		s.mu.RUnlock()
		return doc, nil
	}
	s.mu.RUnlock()

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have opened it meanwhile; keep the first one.
	if existing, ok := s.docs[path]; ok {
		return existing, nil
	}
	s.docs[path] = doc
	return doc, nil
}

// Get returns a cached document without touching the disk.
func (s *Store) Get(path string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[path]
	return doc, ok
}

// Evict drops path from the store. Unknown paths are ignored.
func (s *Store) Evict(path string) {
	s.mu.Lock()
	delete(s.docs, path)
	s.mu.Unlock()
}

// Clear drops every cached document.
func (s *Store) Clear() {
	s.mu.Lock()
	s.docs = make(map[string]*Document)
	s.mu.Unlock()
}

// Info describes a document for tool responses.
type Info struct {
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Format        string   `json:"format"`
	Layers        []string `json:"layers"`
	FileSizeBytes int64    `json:"file_size_bytes"`
	RawBytes      int      `json:"raw_bytes"` // size of the 8bpp RGB raw snapshot
}

// LoadInfo loads path through the store and describes it.
//
// The format is derived from the file extension: "png", "jpeg", "gif",
// "bmp", "tiff" or "unknown".
func LoadInfo(s *Store, path string) (*Info, error) {
	doc, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	}

	return &Info{
		Width:         doc.Width,
		Height:        doc.Height,
		Format:        format,
		Layers:        doc.LayerNames(),
		FileSizeBytes: stat.Size(),
		RawBytes:      doc.Width * doc.Height * 3,
	}, nil
}
