package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semdexhq/semdex/internal/core"
	"github.com/semdexhq/semdex/internal/models"
)

type fakeQuerier struct {
	results  []models.QueryResult
	err      error
	gotQuery string
}

func (f *fakeQuerier) Query(_ context.Context, query string) ([]models.QueryResult, error) {
	f.gotQuery = query
	return f.results, f.err
}

func postQuery(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/query/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestQueryDocuments_ResultsAboveThreshold(t *testing.T) {
	querier := &fakeQuerier{results: []models.QueryResult{
		{Document: "Alpha", Similarity: 0.93},
		{Document: "Beta", Similarity: 0.81},
	}}
	handler := NewQueryHandler(querier)

	rec := httptest.NewRecorder()
	handler.QueryDocuments(rec, postQuery(`{"query": "what is alpha?"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "what is alpha?", querier.gotQuery)

	var resp struct {
		Results []models.QueryResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Alpha", resp.Results[0].Document)
	assert.InDelta(t, 0.93, resp.Results[0].Similarity, 1e-9)
}

func TestQueryDocuments_NoRelevantResults(t *testing.T) {
	handler := NewQueryHandler(&fakeQuerier{})

	rec := httptest.NewRecorder()
	handler.QueryDocuments(rec, postQuery(`{"query": "zxqv gibberish"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No relevant results found", resp["message"])
}

func TestQueryDocuments_InvalidJSON(t *testing.T) {
	handler := NewQueryHandler(&fakeQuerier{})

	rec := httptest.NewRecorder()
	handler.QueryDocuments(rec, postQuery(`{"query": `))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueryDocuments_EmptyQuery(t *testing.T) {
	handler := NewQueryHandler(&fakeQuerier{})

	rec := httptest.NewRecorder()
	handler.QueryDocuments(rec, postQuery(`{"query": ""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueryDocuments_RetrievalFailure(t *testing.T) {
	querier := &fakeQuerier{err: &core.StoreError{Op: "query", Err: errors.New("dial tcp: refused")}}
	handler := NewQueryHandler(querier)

	rec := httptest.NewRecorder()
	handler.QueryDocuments(rec, postQuery(`{"query": "anything"}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}
