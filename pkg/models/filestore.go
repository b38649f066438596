package models

import "gonum.org/v1/gonum/mat"

// WriteResult describes a file written to an output directory.
type WriteResult struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// RecordWriter persists the annotation records of one input as a single JSON file.
type RecordWriter interface {
	Write(records []AnnotationRecord, dir string) (WriteResult, error)
}

// VectorWriter persists a feature matrix as a NumPy array file.
type VectorWriter interface {
	Write(m mat.Matrix, dir string) (WriteResult, error)
}
