package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidField     = errors.New("invalid document field name")
	ErrInvalidDocument  = errors.New("document data must be a JSON object")
)

var fieldNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// ValidateFieldName guards field names that adapters splice into query expressions.
func ValidateFieldName(field string) error {
	if !fieldNameRegex.MatchString(field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return nil
}

// ValidateDocumentData rejects anything but a well-formed JSON object.
func ValidateDocumentData(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrInvalidDocument
	}
	return nil
}

// CollectionPath is a slash separated, user scoped collection, e.g. users/{uid}/workouts.
type CollectionPath string

func WorkoutsPath(userID string) CollectionPath {
	return CollectionPath(fmt.Sprintf("users/%s/workouts", userID))
}

func ConsumedFoodsPath(userID, dayKey string) CollectionPath {
	return CollectionPath(fmt.Sprintf("users/%s/days/%s/consumedFoods", userID, dayKey))
}

// Document is a JSON object stored under a collection path.
type Document struct {
	ID        string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentStore interface {
	// Get returns ErrDocumentNotFound when no document has this id under path.
	Get(ctx context.Context, path CollectionPath, id string) (*Document, error)
	// Put inserts or replaces the document. CreatedAt is kept on replace.
	// Data that is not a JSON object yields ErrInvalidDocument.
	Put(ctx context.Context, path CollectionPath, doc *Document) error
	// Replace overwrites an existing document and never inserts. It returns
	// ErrDocumentNotFound when the document is absent, including after a concurrent Delete.
	Replace(ctx context.Context, path CollectionPath, doc *Document) error
	Delete(ctx context.Context, path CollectionPath, id string) error
	// QueryRange returns documents whose string field lies in [start, end], ordered by that field.
	QueryRange(ctx context.Context, path CollectionPath, field, start, end string) ([]*Document, error)
	// QueryAll returns every document under path in creation order.
	QueryAll(ctx context.Context, path CollectionPath) ([]*Document, error)
	Ping(ctx context.Context) error
}
