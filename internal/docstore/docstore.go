package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrClosed   = errors.New("document store is closed")
)

// Document is one stored record: an opaque ID plus untyped fields.
type Document struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Snapshot is a full replacement delivery of a collection's documents,
// ordered by ID. Subscribers receive a fresh snapshot on every change,
// never a partial update.
type Snapshot []Document

// Store is the document-store contract the views depend on.
// Service code depends ONLY on this interface.
type Store interface {
	// Subscribe delivers the current snapshot immediately, then again on
	// every change to the collection. The returned function cancels the
	// subscription and must be called exactly once on teardown.
	Subscribe(collection string, fn func(Snapshot)) (func(), error)

	Get(ctx context.Context, collection, id string) (Document, error)
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Set writes a document at a known ID. With merge, existing fields not
	// present in the update are kept.
	Set(ctx context.Context, collection, id string, fields map[string]any, merge bool) error

	// Update patches the named fields of an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	Delete(ctx context.Context, collection, id string) error
}
