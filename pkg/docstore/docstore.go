// Package docstore defines a small schemaless document-store contract:
// named collections of documents, each a flat or nested field map with a
// store-assigned ID and creation time. The orders desk and the client's
// local mock database persist through it.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Document is a stored document.
type Document struct {
	ID        string
	CreatedAt time.Time
	Fields    map[string]any
}

// Store is implemented by every document-store backend. Missing documents
// are reported as serrors.ErrNotFound by UpdateDoc and DeleteDoc.
type Store interface {
	// GetAll returns every document of collection. A missing collection is
	// empty, not an error.
	GetAll(ctx context.Context, collection string) ([]Document, error)
	// AddDoc stores fields as a new document and returns its generated ID.
	AddDoc(ctx context.Context, collection string, fields map[string]any) (string, error)
	// UpdateDoc merges patch into the top-level fields of an existing document.
	UpdateDoc(ctx context.Context, collection, id string, patch map[string]any) error
	// DeleteDoc removes a document.
	DeleteDoc(ctx context.Context, collection, id string) error
	// PutDoc creates or replaces the document with a caller-chosen ID.
	PutDoc(ctx context.Context, collection, id string, fields map[string]any) error
	// DropCollection removes a collection and all its documents.
	DropCollection(ctx context.Context, collection string) error
}

// Reserved field names. Encode strips them and Decode fills them from the
// document metadata.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
)

// Encode converts a JSON-tagged value into a field map.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}
	delete(fields, FieldID)
	delete(fields, FieldCreatedAt)

	return fields, nil
}

// Decode fills a JSON-tagged value from doc, including its id and createdAt.
func Decode(doc Document, v any) error {
	fields := make(map[string]any, len(doc.Fields)+2)
	for k, val := range doc.Fields {
		fields[k] = val
	}
	fields[FieldID] = doc.ID
	if !doc.CreatedAt.IsZero() {
		fields[FieldCreatedAt] = doc.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("could not decode document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("could not decode document %s: %w", doc.ID, err)
	}

	return nil
}

// Merge returns a copy of fields with patch applied on top.
func Merge(fields, patch map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+len(patch))
	for k, v := range fields {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}

	return out
}
