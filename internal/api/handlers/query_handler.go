package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/semdexhq/semdex/internal/models"
)

// Querier is the retrieval pipeline as seen by the HTTP layer.
type Querier interface {
	Query(ctx context.Context, query string) ([]models.QueryResult, error)
}

type QueryHandler struct {
	retriever Querier
}

func NewQueryHandler(retriever Querier) *QueryHandler {
	return &QueryHandler{retriever: retriever}
}

type queryRequest struct {
	Query string `json:"query"`
}

// QueryDocuments embeds the query, searches the index and returns the
// sections above the similarity threshold. Finding nothing relevant is a
// normal outcome with its own response shape, never an error.
func (h *QueryHandler) QueryDocuments(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request"})
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "query must not be empty"})
		return
	}

	results, err := h.retriever.Query(r.Context(), req.Query)
	if err != nil {
		log.Printf("query: retrieval failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "query failed"})
		return
	}

	if len(results) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No relevant results found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
