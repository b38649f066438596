package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/pkg/models"
)

const testResponse = `{
	"sentences": [{"start_char": 0, "end_char": 12}],
	"tokens": [
		{"start_char": 0, "end_char": 5, "upos": "INTJ"},
		{"start_char": 6, "end_char": 11, "upos": "PROPN"},
		{"start_char": 11, "end_char": 12, "upos": "PUNCT"}
	],
	"entities": [{"start_char": 6, "end_char": 11, "type": "LOC"}]
}`

func newTestNLPServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestServerAnalyzerAnalyze(t *testing.T) {
	srv := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, annotatePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req AnnotateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello world.", req.Text)
		assert.Equal(t, "en", req.Language)
		assert.Equal(t, []string{"tokenize", "pos", "ner"}, req.Processors)

		_, _ = w.Write([]byte(testResponse))
	})

	analyzer := NewServerAnalyzer(srv.URL+"/", "en", NewRetryableHTTPClient(0, 5*time.Second))
	analysis, err := analyzer.Analyze(context.Background(), "Hello world.")
	require.NoError(t, err)

	assert.Equal(t, []models.AnalyzedSentence{{Offsets: models.Offsets{Start: 0, End: 12}}}, analysis.Sentences)
	require.Len(t, analysis.Tokens, 3)
	assert.Equal(t, "PROPN", analysis.Tokens[1].UPOS)
	assert.Equal(t, models.Offsets{Start: 6, End: 11}, analysis.Tokens[1].Offsets)
	require.Len(t, analysis.Entities, 1)
	assert.Equal(t, "LOC", analysis.Entities[0].Type)
}

func TestServerAnalyzerErrorStatus(t *testing.T) {
	srv := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported encoding", http.StatusUnprocessableEntity)
	})

	analyzer := NewServerAnalyzer(srv.URL, "en", NewRetryableHTTPClient(0, 5*time.Second))
	_, err := analyzer.Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestServerAnalyzerBadJSON(t *testing.T) {
	srv := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	analyzer := NewServerAnalyzer(srv.URL, "en", NewRetryableHTTPClient(0, 5*time.Second))
	_, err := analyzer.Analyze(context.Background(), "text")
	assert.ErrorContains(t, err, "unable to decode")
}

func TestServerAnalyzerRetries(t *testing.T) {
	var calls atomic.Int32
	srv := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(testResponse))
	})

	analyzer := NewServerAnalyzer(srv.URL, "en", NewRetryableHTTPClient(2, 5*time.Second))
	analysis, err := analyzer.Analyze(context.Background(), "Hello world.")
	require.NoError(t, err)
	assert.Len(t, analysis.Tokens, 3)
	assert.Equal(t, int32(2), calls.Load())
}

func TestServerAnalyzerPing(t *testing.T) {
	healthy := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, healthPath, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	unhealthy := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := NewRetryableHTTPClient(0, 5*time.Second)
	assert.NoError(t, NewServerAnalyzer(healthy.URL, "en", client).Ping(context.Background()))
	assert.Error(t, NewServerAnalyzer(unhealthy.URL, "en", client).Ping(context.Background()))
}

func TestNewAnalyzer(t *testing.T) {
	healthy := newTestNLPServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cfg := &config.Config{NLP: config.NLPConfig{
		Analyzer:       config.AnalyzerServer,
		ServerURL:      healthy.URL,
		Language:       "en",
		TimeoutSeconds: 5,
	}}
	analyzer, err := NewAnalyzer(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &ServerAnalyzer{}, analyzer)

	cfg.NLP.Analyzer = config.AnalyzerLocal
	analyzer, err = NewAnalyzer(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalAnalyzer{}, analyzer)

	cfg.NLP.Analyzer = "spacy"
	_, err = NewAnalyzer(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewAnalyzerUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := &config.Config{NLP: config.NLPConfig{
		Analyzer:       config.AnalyzerServer,
		ServerURL:      url,
		TimeoutSeconds: 1,
	}}
	_, err := NewAnalyzer(context.Background(), cfg)
	assert.ErrorContains(t, err, "error initializing NLP pipeline")
}
