package lsp

import "sync"

// document is a snapshot of one open text document.
type document struct {
	uri     string
	version int
	text    string
	starts  []int
}

func newDocument(uri string, version int, text string) *document {
	return &document{uri: uri, version: version, text: text, starts: lineStarts(text)}
}

// documentStore holds the currently open documents, keyed by URI.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]*document)}
}

func (s *documentStore) open(uri string, version int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = newDocument(uri, version, text)
}

func (s *documentStore) update(uri string, version int, text string) {
	s.open(uri, version, text)
}

func (s *documentStore) close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *documentStore) get(uri string) (*document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[uri]
	return d, ok
}
