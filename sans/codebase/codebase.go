// Package codebase tracks open SansScript documents and serves LSP
// language features from their analyzed models.
package codebase

import (
	"sync"

	"github.com/dhamidi/vak/sans"
)

// Codebase is a registry of open documents keyed by URI. Analysis runs
// outside the lock and every update replaces the whole model, so
// readers always see one complete, consistent document.
type Codebase struct {
	mu   sync.RWMutex
	docs map[string]*documentState
}

type documentState struct {
	version int32
	model   *sans.Document
}

// New creates an empty codebase.
func New() *Codebase {
	return &Codebase{docs: make(map[string]*documentState)}
}

// UpdateDocument analyzes text and stores the model under uri. Updates
// carrying an older version than the stored one are discarded; the
// second result reports whether the model was stored.
func (c *Codebase) UpdateDocument(uri string, version int32, text string) (*sans.Document, bool) {
	model := sans.Analyze(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.docs[uri]; ok && version < existing.version {
		return model, false
	}
	c.docs[uri] = &documentState{version: version, model: model}
	return model, true
}

// RefreshDocument re-analyzes an open document without touching its
// version, for save notifications that include the text. It returns
// nil if the document is not open.
func (c *Codebase) RefreshDocument(uri string, text string) *sans.Document {
	model := sans.Analyze(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.docs[uri]
	if !ok {
		return nil
	}
	existing.model = model
	return model
}

// CloseDocument drops the model for uri.
func (c *Codebase) CloseDocument(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, uri)
}

// GetDocument returns the current model for uri, or nil if the
// document is not open.
func (c *Codebase) GetDocument(uri string) *sans.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if state, ok := c.docs[uri]; ok {
		return state.model
	}
	return nil
}
