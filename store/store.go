// Package store defines the persistence contract for invoice documents and
// provides the in-memory implementation. A Postgres-backed implementation
// lives in store/postgres; an HTTP client implementation lives in httpapi.
package store

import (
	"context"
	"errors"

	"github.com/invoicekit/invoicekit"
)

// ErrNotFound is returned by Get, Update, and Delete when no stored
// document matches the given id.
var ErrNotFound = errors.New("document not found")

// Store is the persistence collaborator contract. All calls may fail;
// callers surface failures as notifications and keep their in-memory
// document unchanged.
type Store interface {
	// List returns all stored documents.
	List(ctx context.Context) ([]invoicekit.Document, error)
	// Get returns the document with the given id.
	Get(ctx context.Context, id string) (invoicekit.Document, error)
	// Create stores a new document, assigning its id and creation/update
	// timestamps, and returns the stored form.
	Create(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error)
	// Update replaces a stored document and refreshes its update
	// timestamp. Fails with ErrNotFound when doc.ID matches nothing.
	Update(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error)
	// Delete removes a stored document. Fails with ErrNotFound when id
	// matches nothing.
	Delete(ctx context.Context, id string) error
}
