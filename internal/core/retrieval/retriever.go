package retrieval

import (
	"context"
	"errors"
	"log"

	"github.com/semdexhq/semdex/internal/core"
	"github.com/semdexhq/semdex/internal/models"
)

// Retriever answers natural-language queries against the section index:
// embed the query, fetch the top-k nearest entries, keep those whose
// similarity clears the threshold.
type Retriever struct {
	store     core.VectorStore
	embedder  core.EmbeddingProvider
	topK      int
	threshold float64
}

func NewRetriever(store core.VectorStore, embedder core.EmbeddingProvider, topK int, threshold float64) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{store: store, embedder: embedder, topK: topK, threshold: threshold}
}

// Query returns the relevant sections for the query text in the store's
// ranking order (no re-sorting). An empty slice means no candidate cleared
// the threshold; callers decide how to report that.
func (r *Retriever) Query(ctx context.Context, query string) ([]models.QueryResult, error) {
	vecs, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, &core.EmbeddingError{Err: err}
	}
	if len(vecs) == 0 {
		return nil, &core.EmbeddingError{Err: errors.New("no embedding returned")}
	}

	hits, err := r.store.Search(ctx, vecs[0], r.topK)
	if err != nil {
		return nil, &core.StoreError{Op: "query", Err: err}
	}

	results := make([]models.QueryResult, 0, len(hits))
	for _, h := range hits {
		if h.Similarity > r.threshold {
			results = append(results, models.QueryResult{Document: h.Text, Similarity: h.Similarity})
		}
	}
	log.Printf("retrieval: %d of %d candidates above threshold %g", len(results), len(hits), r.threshold)
	return results, nil
}
