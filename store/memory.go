package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/invoicekit/invoicekit"
)

// Memory is an in-memory Store. Safe for concurrent use. The zero value is
// not usable; create one with NewMemory.
type Memory struct {
	mu    sync.RWMutex
	docs  map[string]invoicekit.Document
	order []string
	now   func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string]invoicekit.Document),
		now:  time.Now,
	}
}

// NewMemoryWithTemplate creates an in-memory store seeded with the stock
// invoice template.
func NewMemoryWithTemplate() *Memory {
	m := NewMemory()
	tpl := invoicekit.BasicTemplate()
	tpl.CreatedAt = m.now().UTC()
	tpl.UpdatedAt = tpl.CreatedAt
	m.docs[tpl.ID] = tpl
	m.order = append(m.order, tpl.ID)
	return m
}

// List returns all stored documents in insertion order.
func (m *Memory) List(ctx context.Context) ([]invoicekit.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]invoicekit.Document, 0, len(m.order))
	for _, id := range m.order {
		docs = append(docs, m.docs[id])
	}
	return docs, nil
}

// Get returns the document with the given id.
func (m *Memory) Get(ctx context.Context, id string) (invoicekit.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return invoicekit.Document{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return doc, nil
}

// Create stores doc under a fresh id with creation/update timestamps and
// returns the stored form.
func (m *Memory) Create(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc.ID = "inv-" + invoicekit.GenerateID()
	now := m.now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	m.docs[doc.ID] = doc
	m.order = append(m.order, doc.ID)
	return doc, nil
}

// Update replaces the stored document with doc's id and refreshes its
// update timestamp.
func (m *Memory) Update(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.docs[doc.ID]
	if !ok {
		return invoicekit.Document{}, fmt.Errorf("update %q: %w", doc.ID, ErrNotFound)
	}
	doc.CreatedAt = stored.CreatedAt
	doc.UpdatedAt = m.now().UTC()
	m.docs[doc.ID] = doc
	return doc, nil
}

// Delete removes the document with the given id.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[id]; !ok {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	delete(m.docs, id)
	for i, stored := range m.order {
		if stored == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
