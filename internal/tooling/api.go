// Package tooling provides a programmatic, thread-safe API over the
// tokenize/repair engine for IDE integration. It is the layer the LSP
// server sits on, mirroring how a GUI shell calls into the engine
// directly: the API never touches a file system or network socket
// itself, it only caches documents the caller hands it.
package tooling

import (
	"sync"

	"github.com/google/uuid"

	"github.com/conduit-lang/constlex/internal/compiler/diagnostics"
	"github.com/conduit-lang/constlex/internal/compiler/facade"
	"github.com/conduit-lang/constlex/internal/compiler/lexer"
)

// API provides thread-safe access to the engine for IDE integration. It
// maintains one Document per open URI so repeated analysis (e.g. on
// every keystroke) does not need the caller to track prior state.
type API struct {
	documents map[string]*Document
	mu        sync.RWMutex
	config    Config
}

// Config holds configuration for the tooling API.
type Config struct {
	// MaxEdits bounds the repair engine's edit budget for every document
	// analyzed through this API.
	MaxEdits int
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{MaxEdits: facade.DefaultConfig().MaxEdits}
}

// Document is a cached analysis of one open source buffer.
type Document struct {
	// ID uniquely identifies this open/update cycle: a fresh random
	// UUID on every Open and Update, not derived from URI or content.
	ID          string
	URI         string
	Content     string
	Version     int
	Tokens      []lexer.Token
	Repaired    []lexer.Token
	Diagnostics diagnostics.List
}

// NewAPI creates a new tooling API with the given configuration.
func NewAPI(config Config) *API {
	return &API{
		documents: make(map[string]*Document),
		config:    config,
	}
}

// Open analyzes content and caches it under uri at version 1.
func (a *API) Open(uri, content string) *Document {
	return a.update(uri, content, 1)
}

// Update re-analyzes content for an already-open document, bumping its
// version. If the document was never opened, it is opened at version 1.
func (a *API) Update(uri, content string) *Document {
	a.mu.RLock()
	existing, ok := a.documents[uri]
	a.mu.RUnlock()

	version := 1
	if ok {
		version = existing.Version + 1
	}
	return a.update(uri, content, version)
}

func (a *API) update(uri, content string, version int) *Document {
	analysis := facade.Analyze(content, facade.Config{MaxEdits: a.config.MaxEdits})

	doc := &Document{
		ID:          uuid.New().String(),
		URI:         uri,
		Content:     content,
		Version:     version,
		Tokens:      analysis.Tokens,
		Repaired:    analysis.Repaired,
		Diagnostics: analysis.Diagnostics,
	}

	a.mu.Lock()
	a.documents[uri] = doc
	a.mu.Unlock()

	return doc
}

// Close evicts a document from the cache.
func (a *API) Close(uri string) {
	a.mu.Lock()
	delete(a.documents, uri)
	a.mu.Unlock()
}

// Get returns the cached document for uri, if any.
func (a *API) Get(uri string) (*Document, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	doc, ok := a.documents[uri]
	return doc, ok
}

// OpenDocumentCount reports how many documents are currently cached.
func (a *API) OpenDocumentCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.documents)
}
