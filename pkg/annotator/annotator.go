package annotator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/segment"
)

var log = internal.GetLogger()

const (
	DefaultModelVersion = "one"
	// DefaultScore is a placeholder, no confidence is computed.
	DefaultScore = 0.5
)

// Annotator shapes analyzer output into annotation records, one result per requested kind.
type Annotator struct {
	analyzer     models.Analyzer
	modelVersion string
	score        float64
}

type Option func(*Annotator)

func WithModelVersion(v string) Option {
	return func(a *Annotator) {
		if v != "" {
			a.modelVersion = v
		}
	}
}

func WithScore(score float64) Option {
	return func(a *Annotator) {
		a.score = score
	}
}

func NewAnnotator(analyzer models.Analyzer, opts ...Option) *Annotator {
	a := &Annotator{
		analyzer:     analyzer,
		modelVersion: DefaultModelVersion,
		score:        DefaultScore,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate runs the analyzer once over segment and builds one AnnotationResult per kind,
// in request order. If the analysis fails the returned record has no predictions and the
// error is an *models.AnalysisError; callers report it and move on to the next segment.
func (a *Annotator) Annotate(
	ctx context.Context,
	segment string,
	kinds []models.AnalysisKind,
) (models.AnnotationRecord, error) {
	if strings.TrimSpace(segment) == "" {
		return models.AnnotationRecord{}, models.NewEmptyInputError("text segment is empty")
	}
	if err := validateKinds(kinds); err != nil {
		return models.AnnotationRecord{}, err
	}

	analysis, err := a.analyzer.Analyze(ctx, segment)
	if err != nil {
		return models.NewAnnotationRecord(segment, nil), models.NewAnalysisError(segment, err)
	}

	source := []rune(segment)
	predictions := make([]models.AnnotationResult, 0, len(kinds))
	for _, kind := range kinds {
		spans, err := buildSpans(source, analysis, kind)
		if err != nil {
			return models.NewAnnotationRecord(segment, nil), models.NewAnalysisError(segment, err)
		}
		predictions = append(predictions, models.AnnotationResult{
			ModelVersion: a.modelVersion,
			Score:        a.score,
			Result:       spans,
		})
	}

	return models.NewAnnotationRecord(segment, predictions), nil
}

// AnnotateText splits text into segments and annotates each of them. A failing segment
// still yields a record (with no predictions); its error is collected and processing
// continues with the next segment.
func (a *Annotator) AnnotateText(
	ctx context.Context,
	text string,
	kinds []models.AnalysisKind,
) ([]models.AnnotationRecord, []error) {
	if err := validateKinds(kinds); err != nil {
		return nil, []error{err}
	}

	segments := segment.Split(text)
	records := make([]models.AnnotationRecord, 0, len(segments))
	var errs []error
	for _, s := range segments {
		record, err := a.Annotate(ctx, s, kinds)
		if err != nil {
			var analysisErr *models.AnalysisError
			if !errors.As(err, &analysisErr) {
				return nil, append(errs, err)
			}
			log.Warnf("Segment analysis failed: %s", err)
			errs = append(errs, err)
		}
		records = append(records, record)
	}

	log.Debugf("Annotated %d segments, %d failed", len(records), len(errs))
	return records, errs
}

func validateKinds(kinds []models.AnalysisKind) error {
	if len(kinds) == 0 {
		return models.NewBadRequestError("at least one analysis kind must be selected")
	}
	for _, k := range kinds {
		if !k.Valid() {
			return models.NewBadRequestError("unknown analysis kind: %q", k)
		}
	}
	return nil
}

func buildSpans(
	source []rune,
	analysis *models.Analysis,
	kind models.AnalysisKind,
) ([]models.AnnotationSpan, error) {
	var spans []models.AnnotationSpan
	add := func(o models.Offsets, label string) error {
		span, err := models.NewSpan(source, o.Start, o.End, label)
		if err != nil {
			return fmt.Errorf("%s: %w", kind.Label(), err)
		}
		spans = append(spans, span)
		return nil
	}

	switch kind {
	case models.SentenceBoundaries:
		spans = make([]models.AnnotationSpan, 0, len(analysis.Sentences))
		for _, s := range analysis.Sentences {
			if err := add(s.Offsets, models.SentenceLabel); err != nil {
				return nil, err
			}
		}
	case models.PartsOfSpeech:
		spans = make([]models.AnnotationSpan, 0, len(analysis.Tokens))
		for _, t := range analysis.Tokens {
			if err := add(t.Offsets, t.UPOS); err != nil {
				return nil, err
			}
		}
	case models.NamedEntities:
		spans = make([]models.AnnotationSpan, 0, len(analysis.Entities))
		for _, e := range analysis.Entities {
			if err := add(e.Offsets, e.Type); err != nil {
				return nil, err
			}
		}
	}

	return spans, nil
}
