package core

import (
	"context"

	"github.com/semdexhq/semdex/internal/models"
)

// VectorStore abstracts the Postgres/pgvector index so higher layers never
// depend on a specific backend. The collection is append-only: no update or
// delete operations exist.
type VectorStore interface {
	// Add appends one immutable entry.
	Add(ctx context.Context, entry *models.IndexedEntry) error

	// Search returns up to k nearest entries for the query vector, ordered
	// by the store's cosine metric with a similarity score attached
	// (1 - cosine distance, higher is more similar).
	Search(ctx context.Context, vector []float32, k int) ([]models.SearchHit, error)

	Ping(ctx context.Context) error
	Close() error
}
