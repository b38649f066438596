package models

import (
	"github.com/getzep/annotext/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Analyzer     Analyzer
	Vectorizer   Vectorizer
	RecordWriter RecordWriter
	VectorWriter VectorWriter
	Config       *config.Config
}
