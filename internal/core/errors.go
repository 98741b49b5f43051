package core

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when an upload's content type is not one
// of the recognized kinds (PDF, Word, plain text). Surfaced as a client
// error; never retried.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// ErrEmptyDocument marks a document whose extracted text contained no
// non-blank lines. Not a failure: ingestion stores nothing and reports the
// outcome distinctly.
var ErrEmptyDocument = errors.New("document contains no indexable text")

// ExtractionError wraps a parse failure from an underlying reader (e.g. a
// corrupt PDF). Distinct from ErrUnsupportedFormat: the format was
// recognized but the file could not be decoded.
type ExtractionError struct {
	ContentType string
	Err         error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.ContentType, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// EmbeddingError wraps a failure from the embedding provider.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string { return fmt.Sprintf("embedding failed: %v", e.Err) }

func (e *EmbeddingError) Unwrap() error { return e.Err }

// StoreError wraps a rejected add or query from the vector store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("vector store %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
