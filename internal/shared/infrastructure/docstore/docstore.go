// Package docstore provides the document collection abstraction the
// application persists through. The capability set is deliberately small:
// get, list (with equality filters), create, update and delete against
// named collections. Backing implementations exist for memory, SQLite and
// Postgres; callers depend only on the Store interface.
package docstore

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrNotFound is returned when a document does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Document is a stored record: an opaque identifier plus its JSON payload.
type Document struct {
	ID   string
	Data []byte
}

// Filter is an equality predicate on a top-level field of the payload.
type Filter struct {
	Field string
	Value any
}

// Store is the capability interface for a document collection backend.
// Create assigns and returns a new unique identifier; identifiers are
// never chosen by callers.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Create(ctx context.Context, collection string, data []byte) (string, error)
	Update(ctx context.Context, collection, id string, data []byte) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}

// Decode unmarshals a document payload into v.
func Decode(doc Document, v any) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return nil
}

// Encode marshals a payload for storage.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// matches reports whether a JSON payload satisfies every filter. Values
// are compared after JSON normalization, so numeric filters match
// regardless of the caller's integer width.
func matches(data []byte, filters []Filter) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return false, err
	}

	for _, f := range filters {
		got, ok := fields[f.Field]
		if !ok {
			return false, nil
		}
		if !valueEquals(got, f.Value) {
			return false, nil
		}
	}
	return true, nil
}

func valueEquals(stored, want any) bool {
	switch w := want.(type) {
	case string:
		s, ok := stored.(string)
		return ok && s == w
	case bool:
		b, ok := stored.(bool)
		return ok && b == w
	case int:
		return numberEquals(stored, float64(w))
	case int64:
		return numberEquals(stored, float64(w))
	case float64:
		return numberEquals(stored, w)
	default:
		return fmt.Sprint(stored) == fmt.Sprint(want)
	}
}

func numberEquals(stored any, want float64) bool {
	f, ok := stored.(float64)
	return ok && f == want
}
