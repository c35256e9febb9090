package lsp

import (
	"net/url"
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// Document is an open text document.
type Document struct {
	URI     string
	Content string
	Version int
	Lines   []int // byte offsets of line starts
}

// DocumentStore holds the documents the client has open.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: make(map[string]*Document)}
}

// Open adds or replaces a document.
func (s *DocumentStore) Open(uri, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[uri] = newDocument(uri, content, version)
}

// Update replaces the content of an open document. Unknown URIs are ignored.
func (s *DocumentStore) Update(uri, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[uri]; ok {
		s.documents[uri] = newDocument(uri, content, version)
	}
}

// Close removes a document.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, uri)
}

// Get returns a snapshot of the document, or nil.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[uri]
}

func newDocument(uri, content string, version int) *Document {
	return &Document{URI: uri, Content: content, Version: version, Lines: computeLineOffsets(content)}
}

func computeLineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// OffsetToPosition converts a byte offset into a protocol position. The
// character is counted in UTF-16 code units.
func (d *Document) OffsetToPosition(offset int) Position {
	offset = min(max(offset, 0), len(d.Content))
	line, exact := slices.BinarySearch(d.Lines, offset)
	if !exact {
		line--
	}

	var units int
	for _, r := range d.Content[d.Lines[line]:offset] {
		units += max(utf16.RuneLen(r), 1)
	}
	return Position{Line: uint32(line), Character: uint32(units)} //nolint:gosec // G115: both are non-negative and bounded by the document
}

// End is the position just past the last character.
func (d *Document) End() Position {
	return d.OffsetToPosition(len(d.Content))
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return strings.TrimPrefix(uri, "file://")
	}
	return u.Path
}
