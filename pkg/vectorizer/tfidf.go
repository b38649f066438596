// Package vectorizer turns corpora into TF-IDF feature matrices.
package vectorizer

import (
	"context"
	"math"
	"sort"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/models"
)

var log = internal.GetLogger()

var _ models.Vectorizer = &TFIDF{}

// TFIDF computes raw term counts weighted by smoothed inverse document frequency,
// ln((1+n)/(1+df))+1, with every row scaled to unit L2 norm.
type TFIDF struct {
	stopWords map[string]struct{}
}

type Option func(*TFIDF)

// WithStopWords removes the named stop word list before counting. Only "english" is known.
func WithStopWords(name string) Option {
	return func(t *TFIDF) {
		if name == config.StopWordsEnglish {
			t.stopWords = englishStopWords
		}
	}
}

func NewTFIDF(opts ...Option) *TFIDF {
	t := &TFIDF{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TFIDF) Vectorize(ctx context.Context, corpus []string) (*models.FeatureMatrix, error) {
	if len(corpus) == 0 {
		return nil, models.NewEmptyInputError("No text data to vectorize.")
	}

	docs := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs[i] = tokenize(doc, t.stopWords)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, term := range docs[i] {
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	if len(df) == 0 {
		return nil, models.NewEmptyInputError(
			"No terms found in the text data; the documents may only contain stop words.",
		)
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	column := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	n := float64(len(corpus))
	for j, term := range vocabulary {
		column[term] = j
		idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	data := mat.NewDense(len(corpus), len(vocabulary), nil)
	row := make([]float64, len(vocabulary))
	for i, terms := range docs {
		for j := range row {
			row[j] = 0
		}
		for _, term := range terms {
			row[column[term]]++
		}
		vek.Mul_Inplace(row, idf)
		if norm := vek.Norm(row); norm > 0 {
			vek.DivNumber_Inplace(row, norm)
		}
		data.SetRow(i, row)
	}

	log.Debugf("vectorized %d documents over %d terms", len(corpus), len(vocabulary))

	return &models.FeatureMatrix{Data: data, Vocabulary: vocabulary}, nil
}
