package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/semdexhq/semdex/internal/core"
	"github.com/semdexhq/semdex/internal/models"
)

// Pipeline composes extraction, splitting, embedding and indexing for a
// single uploaded document.
type Pipeline struct {
	store            core.VectorStore
	embedder         core.EmbeddingProvider
	extractor        core.TextExtractor
	embedConcurrency int
}

func NewPipeline(store core.VectorStore, embedder core.EmbeddingProvider, extractor core.TextExtractor, embedConcurrency int) *Pipeline {
	if embedConcurrency <= 0 {
		embedConcurrency = 4
	}
	return &Pipeline{
		store:            store,
		embedder:         embedder,
		extractor:        extractor,
		embedConcurrency: embedConcurrency,
	}
}

// Ingest extracts text from the upload, splits it into sections, embeds
// every section and appends one entry per section to the vector store.
// It returns the number of sections indexed; core.ErrEmptyDocument reports
// a document whose text yielded no sections (nothing is stored).
//
// Sections are embedded concurrently on a bounded pool but stored strictly
// in section order. Storage is not transactional: a failure partway leaves
// the entries added so far in place.
func (p *Pipeline) Ingest(ctx context.Context, data []byte, contentType string) (int, error) {
	text, err := p.extractor.ExtractText(ctx, data, contentType)
	if err != nil {
		return 0, err
	}

	sections := SplitSections(text)
	if len(sections) == 0 {
		return 0, core.ErrEmptyDocument
	}

	embeddings, err := p.embedSections(ctx, sections)
	if err != nil {
		return 0, &core.EmbeddingError{Err: err}
	}

	now := time.Now()
	for i, sec := range sections {
		entry := &models.IndexedEntry{
			ID:           uuid.NewString(),
			Embedding:    embeddings[i],
			Text:         sec.Text,
			SectionIndex: sec.Index,
			ContentType:  contentType,
			CreatedAt:    now,
		}
		if err := p.store.Add(ctx, entry); err != nil {
			return i, &core.StoreError{Op: "add", Err: err}
		}
		log.Printf("ingest: section %d indexed with ID %s", sec.Index, entry.ID)
	}

	return len(sections), nil
}

// embedSections runs the embedding calls on a bounded worker pool. Results
// land in a pre-sized slice keyed by section position, so downstream storage
// order is deterministic even though completion order is not.
func (p *Pipeline) embedSections(ctx context.Context, sections []models.Section) ([][]float32, error) {
	embeddings := make([][]float32, len(sections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.embedConcurrency)

	for i, sec := range sections {
		g.Go(func() error {
			vecs, err := p.embedder.EmbedTexts(gctx, []string{sec.Text})
			if err != nil {
				return err
			}
			if len(vecs) != 1 {
				return fmt.Errorf("expected 1 embedding, got %d", len(vecs))
			}
			embeddings[i] = vecs[0]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return embeddings, nil
}
