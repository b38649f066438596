package filestore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/pkg/models"
)

var _ models.RecordWriter = &RecordWriter{}

// RecordWriter writes annotation records as an indented JSON array named
// automation_<n>.json, where n is one more than the number of entries in the directory.
// The directory must already exist.
type RecordWriter struct {
	naming string
}

func NewRecordWriter(naming string) *RecordWriter {
	return &RecordWriter{naming: validNaming(naming)}
}

func (w *RecordWriter) Write(records []models.AnnotationRecord, dir string) (models.WriteResult, error) {
	name, err := w.nextName(dir)
	if err != nil {
		return models.WriteResult{}, err
	}
	path := joinName(dir, name)

	f, err := createExclusive(path)
	if err != nil {
		return models.WriteResult{}, err
	}

	if records == nil {
		records = []models.AnnotationRecord{}
	}
	buf := bufio.NewWriter(f)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	err = enc.Encode(records)
	if err == nil {
		err = buf.Flush()
	}

	size, err := finish(f, err)
	if err != nil {
		return models.WriteResult{}, err
	}
	return models.WriteResult{Path: path, Size: size}, nil
}

func (w *RecordWriter) nextName(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("unable to read output directory %s: %w", dir, err)
	}
	if w.naming == config.NamingUnique {
		return uniqueName(recordPrefix, recordExtension), nil
	}
	return fmt.Sprintf("%s%d%s", recordPrefix, len(entries)+1, recordExtension), nil
}
