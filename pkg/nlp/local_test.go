package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/annotext/pkg/models"
)

func TestLocator(t *testing.T) {
	l := newLocator("Zoë saw Zoë.")

	o, ok := l.next("Zoë")
	require.True(t, ok)
	assert.Equal(t, models.Offsets{Start: 0, End: 3}, o)

	o, ok = l.next("saw")
	require.True(t, ok)
	assert.Equal(t, models.Offsets{Start: 4, End: 7}, o)

	// the second occurrence, not the first
	o, ok = l.next("Zoë")
	require.True(t, ok)
	assert.Equal(t, models.Offsets{Start: 8, End: 11}, o)

	_, ok = l.next("missing")
	assert.False(t, ok)

	o, ok = l.next(".")
	require.True(t, ok)
	assert.Equal(t, models.Offsets{Start: 11, End: 12}, o)

	_, ok = l.next("  ")
	assert.False(t, ok)
}

func TestUniversalTag(t *testing.T) {
	testCases := map[string]string{
		"NNP":  "PROPN",
		"VBZ":  "VERB",
		"PRP$": "PRON",
		".":    "PUNCT",
		"MD":   "AUX",
		"???":  "X",
	}
	for penn, want := range testCases {
		assert.Equal(t, want, UniversalTag(penn), penn)
	}
}

func TestLocalAnalyzer(t *testing.T) {
	text := "Barack Obama visited Paris last week. He liked it."
	analysis, err := NewLocalAnalyzer().Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.Sentences)
	assert.NotEmpty(t, analysis.Tokens)

	source := []rune(text)
	check := func(o models.Offsets) {
		assert.True(t, 0 <= o.Start && o.Start <= o.End && o.End <= len(source), "%+v", o)
	}
	for _, s := range analysis.Sentences {
		check(s.Offsets)
	}
	for i, tok := range analysis.Tokens {
		check(tok.Offsets)
		assert.NotEmpty(t, tok.UPOS)
		if i > 0 {
			assert.GreaterOrEqual(t, tok.Start, analysis.Tokens[i-1].End)
		}
	}
	for _, e := range analysis.Entities {
		check(e.Offsets)
		assert.NotEmpty(t, e.Type)
	}

	last := analysis.Tokens[len(analysis.Tokens)-1]
	assert.Equal(t, ".", string(source[last.Start:last.End]))
	assert.Equal(t, "PUNCT", last.UPOS)
}

func TestLocalAnalyzerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalAnalyzer().Analyze(ctx, "Hello.")
	assert.ErrorIs(t, err, context.Canceled)
}
