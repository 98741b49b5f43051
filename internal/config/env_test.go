package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/semdex")

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "text-embedding-004", cfg.EmbedModel)
	assert.Equal(t, 768, cfg.EmbedDim)
	assert.Equal(t, 4, cfg.EmbedConcurrency)
	assert.InDelta(t, 0.7, cfg.SimilarityThreshold, 1e-9)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.StagingDir)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/semdex")
	t.Setenv("TOP_K", "10")
	t.Setenv("SIMILARITY_THRESHOLD", "0.55")
	t.Setenv("EMBED_DIM", "1536")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.TopK)
	assert.InDelta(t, 0.55, cfg.SimilarityThreshold, 1e-9)
	assert.Equal(t, 1536, cfg.EmbedDim)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfig_BadNumbersFallBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/semdex")
	t.Setenv("TOP_K", "five")
	t.Setenv("SIMILARITY_THRESHOLD", "high")

	cfg := LoadConfig()

	assert.Equal(t, 5, cfg.TopK)
	assert.InDelta(t, 0.7, cfg.SimilarityThreshold, 1e-9)
}
