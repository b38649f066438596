package testutils

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/getzep/annotext/pkg/models"
)

var ErrFakeAnalysis = errors.New("fake analyzer failure")

// FakeAnalyzer is a deterministic models.Analyzer. Every whitespace separated word is a
// token tagged "PROPN" when capitalized and "X" otherwise, the whole text is one
// sentence and every capitalized word after the first is a "MISC" entity. Texts
// containing FailOn fail with ErrFakeAnalysis, and a done context fails like the real
// analyzers do.
type FakeAnalyzer struct {
	FailOn string
	Calls  int
}

var _ models.Analyzer = (*FakeAnalyzer)(nil)

func (f *FakeAnalyzer) Analyze(ctx context.Context, text string) (*models.Analysis, error) {
	f.Calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FailOn != "" && strings.Contains(text, f.FailOn) {
		return nil, ErrFakeAnalysis
	}

	analysis := &models.Analysis{
		Sentences: []models.AnalyzedSentence{
			{Offsets: models.Offsets{Start: 0, End: utf8.RuneCountInString(text)}},
		},
	}

	runes := []rune(text)
	start := -1
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && !unicode.IsSpace(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		o := models.Offsets{Start: start, End: i}
		tag := "X"
		if unicode.IsUpper(runes[start]) {
			tag = "PROPN"
			if len(analysis.Tokens) > 0 {
				analysis.Entities = append(analysis.Entities, models.AnalyzedEntity{Offsets: o, Type: "MISC"})
			}
		}
		analysis.Tokens = append(analysis.Tokens, models.AnalyzedToken{Offsets: o, UPOS: tag})
		start = -1
	}

	return analysis, nil
}

// StaticAnalyzer returns the same analysis for every text.
type StaticAnalyzer struct {
	Analysis *models.Analysis
}

func (s *StaticAnalyzer) Analyze(context.Context, string) (*models.Analysis, error) {
	return s.Analysis, nil
}

const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns an alphanumeric string, used for throwaway secrets.
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		bigInt, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		b[i] = charset[bigInt.Int64()]
	}
	return string(b)
}
