// Package nlp provides the linguistic pipelines behind models.Analyzer.
package nlp

import (
	"context"
	"fmt"
	"time"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/models"
)

var log = internal.GetLogger()

// NewAnalyzer builds the analyzer selected by nlp.analyzer. A server analyzer must answer
// its health check, otherwise the tool cannot start.
func NewAnalyzer(ctx context.Context, cfg *config.Config) (models.Analyzer, error) {
	switch cfg.NLP.Analyzer {
	case config.AnalyzerLocal:
		log.Info("Using local NLP pipeline")
		return NewLocalAnalyzer(), nil
	case config.AnalyzerServer:
		client := NewRetryableHTTPClient(
			cfg.NLP.RetryMax,
			time.Duration(cfg.NLP.TimeoutSeconds)*time.Second,
		)
		analyzer := NewServerAnalyzer(cfg.NLP.ServerURL, cfg.NLP.Language, client)
		if err := analyzer.Ping(ctx); err != nil {
			return nil, fmt.Errorf("error initializing NLP pipeline: %w", err)
		}
		log.Infof("Using NLP server at %s", cfg.NLP.ServerURL)
		return analyzer, nil
	default:
		return nil, fmt.Errorf("nlp.analyzer (%s) is not supported", cfg.NLP.Analyzer)
	}
}
