package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/semdexhq/semdex/internal/core"
)

// Ingestor is the ingestion pipeline as seen by the HTTP layer.
type Ingestor interface {
	Ingest(ctx context.Context, data []byte, contentType string) (int, error)
}

type IngestHandler struct {
	pipeline Ingestor
}

func NewIngestHandler(pipeline Ingestor) *IngestHandler {
	return &IngestHandler{pipeline: pipeline}
}

// IngestDocument handles the multipart upload, runs the pipeline and maps
// pipeline failures onto the error taxonomy: unsupported formats and
// unreadable files are client errors, embedding/store failures are server
// errors with the internal detail kept out of the response.
func (h *IngestHandler) IngestDocument(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "could not read file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	log.Printf("ingest: received %q (%s, %d bytes)", header.Filename, contentType, len(data))

	count, err := h.pipeline.Ingest(r.Context(), data, contentType)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"message":          "Document ingested successfully",
			"sections_indexed": count,
		})
	case errors.Is(err, core.ErrUnsupportedFormat):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
	case errors.Is(err, core.ErrEmptyDocument):
		writeJSON(w, http.StatusOK, map[string]any{
			"message":          "Document contained no indexable text",
			"sections_indexed": 0,
		})
	default:
		var extractErr *core.ExtractionError
		if errors.As(err, &extractErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "could not extract text from document"})
			return
		}
		log.Printf("ingest: pipeline failed for %q: %v", header.Filename, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "ingestion failed"})
	}
}
