// Package postgres implements store.Store on PostgreSQL. Documents are
// stored as JSONB rows keyed by id, with timestamps in dedicated columns so
// listing can order by creation time without unpacking the payload.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/invoicekit/invoicekit"
	"github.com/invoicekit/invoicekit/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// Store is a PostgreSQL-backed document store.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open connects to the database at dsn, ensures the documents table
// exists, and returns the store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &Store{db: db}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure documents table: %w", err)
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns all documents ordered by creation time.
func (s *Store) List(ctx context.Context) ([]invoicekit.Document, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM documents ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []invoicekit.Document
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var doc invoicekit.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Get returns the document with the given id.
func (s *Store) Get(ctx context.Context, id string) (invoicekit.Document, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM documents WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return invoicekit.Document{}, fmt.Errorf("get %q: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return invoicekit.Document{}, fmt.Errorf("get %q: %w", id, err)
	}
	var doc invoicekit.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invoicekit.Document{}, fmt.Errorf("decode %q: %w", id, err)
	}
	return doc, nil
}

// Create stores doc under a fresh id with creation/update timestamps and
// returns the stored form.
func (s *Store) Create(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error) {
	doc.ID = "inv-" + invoicekit.GenerateID()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	raw, err := json.Marshal(doc)
	if err != nil {
		return invoicekit.Document{}, fmt.Errorf("encode document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		doc.ID, raw, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return invoicekit.Document{}, fmt.Errorf("insert %q: %w", doc.ID, err)
	}
	return doc, nil
}

// Update replaces the stored document with doc's id and refreshes its
// update timestamp.
func (s *Store) Update(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error) {
	stored, err := s.Get(ctx, doc.ID)
	if err != nil {
		return invoicekit.Document{}, err
	}
	doc.CreatedAt = stored.CreatedAt
	doc.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(doc)
	if err != nil {
		return invoicekit.Document{}, fmt.Errorf("encode document: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET doc = $2, updated_at = $3 WHERE id = $1`,
		doc.ID, raw, doc.UpdatedAt)
	if err != nil {
		return invoicekit.Document{}, fmt.Errorf("update %q: %w", doc.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return invoicekit.Document{}, fmt.Errorf("update %q: %w", doc.ID, store.ErrNotFound)
	}
	return doc, nil
}

// Delete removes the document with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", id, store.ErrNotFound)
	}
	return nil
}
