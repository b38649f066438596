package models

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// FeatureMatrix holds one row per document and one column per vocabulary term.
type FeatureMatrix struct {
	Data *mat.Dense
	// Vocabulary names the columns, sorted alphabetically. It is not persisted.
	Vocabulary []string
}

// Dims returns the number of documents and terms.
func (m *FeatureMatrix) Dims() (rows, cols int) {
	if m == nil || m.Data == nil {
		return 0, 0
	}
	return m.Data.Dims()
}

// Vectorizer turns a corpus into a numeric feature matrix.
type Vectorizer interface {
	Vectorize(ctx context.Context, corpus []string) (*FeatureMatrix, error)
}
