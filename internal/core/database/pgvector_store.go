package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/semdexhq/semdex/internal/config"
	"github.com/semdexhq/semdex/internal/core"
	"github.com/semdexhq/semdex/internal/models"
)

// PgVectorStore implements core.VectorStore on Postgres + pgvector.
//
// Similarity semantics: pgvector's <=> operator is cosine *distance*
// (lower is more similar). Search returns 1 - (embedding <=> query), i.e.
// cosine similarity in [-1, 1] where higher is more similar, so callers can
// filter with `similarity > threshold` and the comparison direction is
// correct for this store's documented metric.
type PgVectorStore struct {
	db *sql.DB
}

var _ core.VectorStore = (*PgVectorStore)(nil)

func NewPgVectorStore(ctx context.Context, cfg *config.Config) (*PgVectorStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("vector store configuration is nil")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for an API service; adjust as needed.
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, sqlDB, cfg.EmbedDim); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &PgVectorStore{db: sqlDB}, nil
}

func (s *PgVectorStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PgVectorStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Add appends one immutable entry. There is deliberately no batch/transaction
// variant: a multi-section ingestion that fails partway leaves the entries
// added so far in place.
func (s *PgVectorStore) Add(ctx context.Context, entry *models.IndexedEntry) error {
	if entry == nil {
		return errors.New("nil entry")
	}
	const q = `
		INSERT INTO indexed_sections
			(id, embedding, text, section_index, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
	`
	vec := pgvector.NewVector(entry.Embedding)
	_, err := s.db.ExecContext(ctx, q,
		entry.ID, vec, entry.Text, entry.SectionIndex, entry.ContentType, entry.CreatedAt)
	return err
}

// Search returns the k nearest entries by cosine distance, most similar
// first, with the distance converted to a similarity score.
func (s *PgVectorStore) Search(ctx context.Context, vector []float32, k int) ([]models.SearchHit, error) {
	const q = `
		SELECT text, section_index, content_type, 1 - (embedding <=> $1) AS similarity
		FROM indexed_sections
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	vec := pgvector.NewVector(vector)
	rows, err := s.db.QueryContext(ctx, q, vec, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SearchHit
	for rows.Next() {
		var h models.SearchHit
		if err := rows.Scan(&h.Text, &h.SectionIndex, &h.ContentType, &h.Similarity); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
