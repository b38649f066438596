package models

import (
	"fmt"
)

const (
	SentenceLabel = "Sentence"

	spanFromName = "label"
	spanToName   = "text"
	spanType     = "labels"
)

// SpanValue is the labeled character range of a span.
type SpanValue struct {
	Start  int      `json:"start"`
	End    int      `json:"end"`
	Text   string   `json:"text"`
	Labels []string `json:"labels"`
}

// AnnotationSpan is one labeled region of a segment in the Label Studio result format.
type AnnotationSpan struct {
	ID       string    `json:"id"`
	FromName string    `json:"from_name"`
	ToName   string    `json:"to_name"`
	Type     string    `json:"type"`
	Value    SpanValue `json:"value"`
}

// NewSpan builds a span over source[start:end], where offsets count code points.
// The covered text is always derived from source.
func NewSpan(source []rune, start, end int, label string) (AnnotationSpan, error) {
	if start < 0 || start > end || end > len(source) {
		return AnnotationSpan{}, fmt.Errorf(
			"span [%d, %d) out of range for text of length %d",
			start, end, len(source),
		)
	}
	return AnnotationSpan{
		ID:       fmt.Sprintf("%d_%d", start, end),
		FromName: spanFromName,
		ToName:   spanToName,
		Type:     spanType,
		Value: SpanValue{
			Start:  start,
			End:    end,
			Text:   string(source[start:end]),
			Labels: []string{label},
		},
	}, nil
}

// Label returns the single label of the span.
func (s AnnotationSpan) Label() string {
	if len(s.Value.Labels) == 0 {
		return ""
	}
	return s.Value.Labels[0]
}

// AnnotationResult is one analysis kind applied to one segment.
type AnnotationResult struct {
	ModelVersion string           `json:"model_version"`
	Score        float64          `json:"score"`
	Result       []AnnotationSpan `json:"result"`
}

type TaskData struct {
	Text string `json:"text"`
}

// AnnotationRecord is one processed segment: a Label Studio task with predictions.
type AnnotationRecord struct {
	Data        TaskData           `json:"data"`
	Predictions []AnnotationResult `json:"predictions"`
}

func NewAnnotationRecord(text string, predictions []AnnotationResult) AnnotationRecord {
	if predictions == nil {
		predictions = []AnnotationResult{}
	}
	return AnnotationRecord{
		Data:        TaskData{Text: text},
		Predictions: predictions,
	}
}
