package vectorizer

import (
	"context"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/pkg/models"
)

func TestTFIDFVectorize(t *testing.T) {
	m, err := NewTFIDF().Vectorize(context.Background(), []string{"cat dog", "dog bird"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bird", "cat", "dog"}, m.Vocabulary)
	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	rare := math.Log(3.0/2.0) + 1
	norm := math.Sqrt(rare*rare + 1)
	want := mat.NewDense(2, 3, []float64{
		0, rare / norm, 1 / norm,
		rare / norm, 0, 1 / norm,
	})
	assert.True(t, mat.EqualApprox(want, m.Data, 1e-12))

	for i := 0; i < rows; i++ {
		assert.InDelta(t, 1.0, mat.Norm(m.Data.RowView(i), 2), 1e-12)
	}
}

func TestTFIDFTokenization(t *testing.T) {
	m, err := NewTFIDF().Vectorize(
		context.Background(),
		[]string{"The Café, the café; a b 42 snake_case!"},
	)
	require.NoError(t, err)

	// single characters are dropped, case is folded
	assert.Equal(t, []string{"42", "café", "snake_case", "the"}, m.Vocabulary)
	assert.InDelta(t, 2*m.Data.At(0, 0), m.Data.At(0, 1), 1e-12)
}

func TestTokenizeCombiningMarks(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		want []string
	}{
		{name: "composed", doc: "caf\u00e9 au lait", want: []string{"café", "au", "lait"}},
		{name: "decomposed", doc: "cafe\u0301 au lait", want: []string{"cafe", "au", "lait"}},
		{name: "mark splits word", doc: "nai\u0308ve", want: []string{"nai", "ve"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize(tc.doc, nil))
		})
	}
}

func TestTFIDFEmpty(t *testing.T) {
	testCases := []struct {
		name   string
		corpus []string
		opts   []Option
	}{
		{name: "no documents", corpus: nil},
		{name: "empty texts", corpus: []string{"", ""}},
		{name: "single characters", corpus: []string{"a b c", "x"}},
		{
			name:   "only stop words",
			corpus: []string{"the and of", "it is"},
			opts:   []Option{WithStopWords(config.StopWordsEnglish)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewTFIDF(tc.opts...).Vectorize(context.Background(), tc.corpus)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, models.ErrEmptyInput)
		})
	}
}

func TestTFIDFSingleDocument(t *testing.T) {
	m, err := NewTFIDF().Vectorize(context.Background(), []string{"one fish two fish"})
	require.NoError(t, err)

	assert.Equal(t, []string{"fish", "one", "two"}, m.Vocabulary)
	// idf is 1 for every term of a single document
	norm := math.Sqrt(4 + 1 + 1)
	assert.InDelta(t, 2/norm, m.Data.At(0, 0), 1e-12)
	assert.InDelta(t, 1/norm, m.Data.At(0, 1), 1e-12)
}

func TestTFIDFDocumentWithoutTerms(t *testing.T) {
	m, err := NewTFIDF().Vectorize(context.Background(), []string{"apples pears", "", "a"})
	require.NoError(t, err)

	rows, _ := m.Dims()
	require.Equal(t, 3, rows)
	assert.Equal(t, 0.0, mat.Norm(m.Data.RowView(1), 2))
	assert.Equal(t, 0.0, mat.Norm(m.Data.RowView(2), 2))
}

func TestTFIDFDisjointVocabularies(t *testing.T) {
	m, err := NewTFIDF().Vectorize(context.Background(), []string{"alpha beta", "gamma delta"})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta", "delta", "gamma"}, m.Vocabulary)
	var product mat.Dense
	product.Mul(m.Data.RowView(0).T(), m.Data.RowView(1))
	assert.Equal(t, 0.0, product.At(0, 0))
}

func TestTFIDFStopWords(t *testing.T) {
	corpus := []string{"The cat sat on the mat", "A dog and the cat"}

	plain, err := NewTFIDF().Vectorize(context.Background(), corpus)
	require.NoError(t, err)
	assert.Contains(t, plain.Vocabulary, "the")

	filtered, err := NewTFIDF(WithStopWords(config.StopWordsEnglish)).
		Vectorize(context.Background(), corpus)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "mat", "sat"}, filtered.Vocabulary)
}

func TestTFIDFRandomCorpus(t *testing.T) {
	corpus := make([]string, 10)
	for i := range corpus {
		corpus[i] = gofakeit.Paragraph(2, 4, 12, " ")
	}

	m, err := NewTFIDF().Vectorize(context.Background(), corpus)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, len(corpus), rows)
	assert.Equal(t, len(m.Vocabulary), cols)
	assert.IsIncreasing(t, m.Vocabulary)
	for i := 0; i < rows; i++ {
		assert.InDelta(t, 1.0, mat.Norm(m.Data.RowView(i), 2), 1e-9)
	}
}

func TestTFIDFCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTFIDF().Vectorize(ctx, []string{"some text"})
	assert.ErrorIs(t, err, context.Canceled)
}
