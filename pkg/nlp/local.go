package nlp

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"

	"github.com/getzep/annotext/pkg/models"
)

var _ models.Analyzer = &LocalAnalyzer{}

// LocalAnalyzer runs an in-process English pipeline (prose). prose reports surface text
// only, so offsets are recovered by scanning the source left to right; pieces that cannot
// be located verbatim are dropped.
type LocalAnalyzer struct{}

func NewLocalAnalyzer() *LocalAnalyzer {
	return &LocalAnalyzer{}
}

func (l *LocalAnalyzer) Analyze(ctx context.Context, text string) (analysis *models.Analysis, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			analysis, err = nil, fmt.Errorf("local NLP pipeline panicked: %v", r)
		}
	}()

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	analysis = &models.Analysis{
		Sentences: []models.AnalyzedSentence{},
		Tokens:    []models.AnalyzedToken{},
		Entities:  []models.AnalyzedEntity{},
	}

	sentences := newLocator(text)
	for _, s := range doc.Sentences() {
		if o, ok := sentences.next(s.Text); ok {
			analysis.Sentences = append(analysis.Sentences, models.AnalyzedSentence{Offsets: o})
		}
	}

	tokens := newLocator(text)
	for _, t := range doc.Tokens() {
		if o, ok := tokens.next(t.Text); ok {
			analysis.Tokens = append(analysis.Tokens, models.AnalyzedToken{
				Offsets: o,
				UPOS:    UniversalTag(t.Tag),
			})
		}
	}

	entities := newLocator(text)
	for _, e := range doc.Entities() {
		if o, ok := entities.next(e.Text); ok {
			analysis.Entities = append(analysis.Entities, models.AnalyzedEntity{
				Offsets: o,
				Type:    e.Label,
			})
		}
	}

	return analysis, nil
}

// locator finds successive pieces of a source text and converts byte positions to
// code point offsets.
type locator struct {
	source string
	// byte and rune position of the end of the last located piece
	bytePos int
	runePos int
}

func newLocator(source string) *locator {
	return &locator{source: source}
}

func (l *locator) next(piece string) (models.Offsets, bool) {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return models.Offsets{}, false
	}
	idx := strings.Index(l.source[l.bytePos:], piece)
	if idx < 0 {
		log.Debugf("local analyzer could not locate %q in source", piece)
		return models.Offsets{}, false
	}

	startByte := l.bytePos + idx
	start := l.runePos + utf8.RuneCountInString(l.source[l.bytePos:startByte])
	end := start + utf8.RuneCountInString(piece)

	l.bytePos = startByte + len(piece)
	l.runePos = end

	return models.Offsets{Start: start, End: end}, true
}
