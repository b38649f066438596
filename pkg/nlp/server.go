package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getzep/annotext/pkg/models"
)

const (
	annotatePath = "/annotate"
	healthPath   = "/healthz"

	maxErrorBody = 512
)

var _ models.Analyzer = &ServerAnalyzer{}

// AnnotateRequest is the body posted to the NLP server.
type AnnotateRequest struct {
	Text       string   `json:"text"`
	Language   string   `json:"language"`
	Processors []string `json:"processors"`
}

// ServerAnalyzer delegates analysis to a remote NLP server that runs a full
// tokenize/pos/ner pipeline and reports character offsets.
type ServerAnalyzer struct {
	baseURL  string
	language string
	client   *http.Client
}

func NewServerAnalyzer(baseURL, language string, client *http.Client) *ServerAnalyzer {
	return &ServerAnalyzer{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		client:   client,
	}
}

func (s *ServerAnalyzer) Analyze(ctx context.Context, text string) (*models.Analysis, error) {
	body, err := json.Marshal(AnnotateRequest{
		Text:       text,
		Language:   s.language,
		Processors: []string{"tokenize", "pos", "ner"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+annotatePath,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NLP server request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf(
			"NLP server returned %s: %s",
			resp.Status,
			strings.TrimSpace(string(msg)),
		)
	}

	var analysis models.Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, fmt.Errorf("unable to decode NLP server response: %w", err)
	}

	log.Debugf(
		"NLP server returned %d sentences, %d tokens, %d entities",
		len(analysis.Sentences), len(analysis.Tokens), len(analysis.Entities),
	)
	return &analysis, nil
}

// Ping checks that the NLP server is reachable and healthy.
func (s *ServerAnalyzer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+healthPath, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("NLP server at %s is not reachable: %w", s.baseURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("NLP server at %s is unhealthy: %s", s.baseURL, resp.Status)
	}
	return nil
}
