package core

import "context"

// EmbeddingProvider maps texts to fixed-length vectors. Implementations must
// be deterministic for a fixed model version and safe for concurrent use;
// the returned vectors share one dimensionality with the vector store.
type EmbeddingProvider interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
