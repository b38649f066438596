package models

import (
	"context"
	"encoding/json"
	"strings"
)

// AnalysisKind is a category of linguistic annotation.
type AnalysisKind string

const (
	SentenceBoundaries AnalysisKind = "SentenceBoundaries"
	PartsOfSpeech      AnalysisKind = "PartsOfSpeech"
	NamedEntities      AnalysisKind = "NamedEntities"
)

// AllAnalysisKinds lists the kinds in their canonical display order.
var AllAnalysisKinds = []AnalysisKind{SentenceBoundaries, PartsOfSpeech, NamedEntities}

var kindLabels = map[AnalysisKind]string{
	SentenceBoundaries: "Sentence Boundaries",
	PartsOfSpeech:      "Parts of Speech",
	NamedEntities:      "Named Entities",
}

var kindAliases = map[string]AnalysisKind{
	"sentenceboundaries": SentenceBoundaries,
	"sentences":          SentenceBoundaries,
	"sentence":           SentenceBoundaries,
	"partsofspeech":      PartsOfSpeech,
	"pos":                PartsOfSpeech,
	"namedentities":      NamedEntities,
	"entities":           NamedEntities,
	"ner":                NamedEntities,
}

// Label returns the human readable name shown in the web UI.
func (k AnalysisKind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k AnalysisKind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// ParseAnalysisKind accepts canonical names, UI labels ("Parts of Speech") and short
// aliases ("pos"), ignoring case, spaces, dashes and underscores.
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	key := strings.ToLower(s)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return "", NewBadRequestError("unknown analysis kind: %q", s)
}

// ParseAnalysisKinds parses every value, keeping order. Comma separated values are split.
func ParseAnalysisKinds(values []string) ([]AnalysisKind, error) {
	kinds := make([]AnalysisKind, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			k, err := ParseAnalysisKind(part)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

func (k *AnalysisKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAnalysisKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AnnotationRequest is one segment and the analyses requested for it.
type AnnotationRequest struct {
	Text  string         `json:"text" validate:"required"`
	Kinds []AnalysisKind `json:"kinds" validate:"min=1"`
}

// Offsets are Unicode code point indexes into the analyzed text; End is exclusive.
type Offsets struct {
	Start int `json:"start_char"`
	End   int `json:"end_char"`
}

type AnalyzedSentence struct {
	Offsets
}

type AnalyzedToken struct {
	Offsets
	// UPOS is the universal part-of-speech tag.
	UPOS string `json:"upos"`
}

type AnalyzedEntity struct {
	Offsets
	Type string `json:"type"`
}

// Analysis is the output of one run of the linguistic pipeline over a text.
type Analysis struct {
	Sentences []AnalyzedSentence `json:"sentences"`
	Tokens    []AnalyzedToken    `json:"tokens"`
	Entities  []AnalyzedEntity   `json:"entities"`
}

// Analyzer runs sentence splitting, part-of-speech tagging and named entity recognition.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
}
