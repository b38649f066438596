package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"dario.cat/mergo"
	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"

	"github.com/getzep/annotext/pkg/models"
)

type VectorizeRequest struct {
	File      InputFile `json:"file"`
	OutputDir string    `json:"output_dir" validate:"required"`
}

type VectorizeReport struct {
	Messages   models.Messages `json:"messages"`
	Path       string          `json:"path,omitempty"`
	Size       int64           `json:"size,omitempty"`
	Documents  int             `json:"documents"`
	Terms      int             `json:"terms"`
	Vocabulary []string        `json:"vocabulary,omitempty"`
}

// annotationTask is the part of an annotation record the vectorizer reads.
type annotationTask struct {
	Data struct {
		Text string `json:"text"`
	} `json:"data"`
}

type VectorizeFlow struct {
	vectorizer models.Vectorizer
	writer     models.VectorWriter
	defaults   VectorizeRequest
}

func NewVectorizeFlow(appState *models.AppState) *VectorizeFlow {
	return &VectorizeFlow{
		vectorizer: appState.Vectorizer,
		writer:     appState.VectorWriter,
		defaults:   VectorizeRequest{OutputDir: appState.Config.Vectorizer.OutputDir},
	}
}

// Run vectorizes the data.text field of every record in the uploaded JSON array and
// saves the matrix to the next free vec_<i>.npy.
func (f *VectorizeFlow) Run(ctx context.Context, req VectorizeRequest) *VectorizeReport {
	ctx, span := tracer.Start(ctx, "VectorizeFlow.Run")
	defer span.End()

	report := &VectorizeReport{Messages: models.Messages{}}

	if req.OutputDir == "" {
		if err := mergo.Merge(&req, f.defaults); err != nil {
			report.Messages.Error(err.Error())
			return report
		}
	}
	if err := validate.Struct(req); err != nil {
		report.Messages.Report(models.NewBadRequestError("invalid vectorize request: %v", err))
		return report
	}

	texts, err := extractTexts(req.File.Content)
	if err != nil {
		report.Messages.Error(fmt.Sprintf("Error loading %s: %v", req.File.Name, err))
		return report
	}
	if len(texts) == 0 {
		report.Messages.Warning("No text data found in the JSON file.")
	}
	report.Documents = len(texts)
	span.SetAttributes(attribute.Int("annotext.documents", len(texts)))

	matrix, err := f.vectorizer.Vectorize(ctx, texts)
	if err != nil {
		if isEmptyInput(err) {
			report.Messages.Report(err)
			return report
		}
		span.RecordError(err)
		report.Messages.Error(fmt.Sprintf("An error occurred during text vectorization: %v", err))
		return report
	}
	_, report.Terms = matrix.Dims()
	report.Vocabulary = matrix.Vocabulary

	result, err := f.writer.Write(matrix.Data, req.OutputDir)
	if err != nil {
		span.RecordError(err)
		report.Messages.Error(fmt.Sprintf("An error occurred while saving vectorized data: %v", err))
		return report
	}
	report.Path, report.Size = result.Path, result.Size

	log.Infof(
		"vectorized %s: %d documents x %d terms, saved to %s",
		req.File.Name, report.Documents, report.Terms, result.Path,
	)
	report.Messages.Success(fmt.Sprintf(
		"Vectorized data saved to %s (%s)",
		result.Path,
		humanize.Bytes(uint64(result.Size)),
	))
	return report
}

func extractTexts(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return nil, errors.New("unable to load JSON data: content is not valid UTF-8")
	}
	var tasks []annotationTask
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf(
			"failed to decode JSON data, make sure the file is a JSON array of annotation records: %w",
			err,
		)
	}
	texts := make([]string, len(tasks))
	for i, task := range tasks {
		texts[i] = task.Data.Text
	}
	return texts, nil
}
