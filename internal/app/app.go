package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/semdexhq/semdex/internal/config"
	db "github.com/semdexhq/semdex/internal/core/database"
	"github.com/semdexhq/semdex/internal/core/ingest"
	"github.com/semdexhq/semdex/internal/core/llm"
	"github.com/semdexhq/semdex/internal/core/retrieval"
)

// App holds the process-wide collaborators, constructed once at startup and
// injected into the request handlers.
type App struct {
	Store     *db.PgVectorStore
	Embedder  *llm.GeminiEmbedder
	Pipeline  *ingest.Pipeline
	Retriever *retrieval.Retriever
	Server    *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	store, err := db.NewPgVectorStore(appCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the vector store, %w", err)
	}
	log.Println("Vector store initialized and ready.")

	embedder, err := llm.NewGeminiEmbedder(appCtx, cfg.AIAPIKey, cfg.EmbedModel)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("couldn't initialize the embedder, %w", err)
	}

	extractor := ingest.NewDocconvExtractor(cfg.StagingDir)
	pipeline := ingest.NewPipeline(store, embedder, extractor, cfg.EmbedConcurrency)
	retriever := retrieval.NewRetriever(store, embedder, cfg.TopK, cfg.SimilarityThreshold)

	server := NewServer(cfg, store, pipeline, retriever)

	return &App{
		Store:     store,
		Embedder:  embedder,
		Pipeline:  pipeline,
		Retriever: retriever,
		Server:    server,
	}, nil
}

func (a *App) Close() {
	if a.Embedder != nil {
		_ = a.Embedder.Close()
	}
	if a.Store != nil {
		_ = a.Store.Close()
	}
}
