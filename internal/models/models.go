package models

import (
	"time"
)

// Section is one non-empty, whitespace-trimmed line of a document's
// extracted text. Sections are the atomic unit of indexing; the document
// itself is never persisted as a unit.
type Section struct {
	Text  string
	Index int
}

// IndexedEntry is the persisted record in the vector store: one entry per
// section, immutable once written. IDs are generated fresh per section and
// never reused, so re-ingesting the same document duplicates its entries.
type IndexedEntry struct {
	ID           string    `db:"id" json:"id"`
	Embedding    []float32 `db:"embedding" json:"embedding"` // pgvector column
	Text         string    `db:"text" json:"text"`
	SectionIndex int       `db:"section_index" json:"section_index"`
	ContentType  string    `db:"content_type" json:"content_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SearchHit is one nearest-neighbour candidate returned by the vector
// store, before threshold filtering.
type SearchHit struct {
	Text         string
	SectionIndex int
	ContentType  string
	Similarity   float64
}

// QueryResult is the caller-facing (section text, similarity) pair.
type QueryResult struct {
	Document   string  `json:"document"`
	Similarity float64 `json:"similarity"`
}
