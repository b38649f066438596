package pipeline

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"dario.cat/mergo"
	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"

	"github.com/getzep/annotext/pkg/annotator"
	"github.com/getzep/annotext/pkg/models"
)

type AnnotateRequest struct {
	Files     []InputFile           `json:"files" validate:"required,min=1,dive"`
	Kinds     []models.AnalysisKind `json:"kinds" validate:"required,min=1"`
	OutputDir string                `json:"output_dir" validate:"required"`
}

// FileReport is the outcome for one input file. Path is empty when nothing was written.
type FileReport struct {
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Segments int    `json:"segments"`
	Failed   int    `json:"failed"`
}

type AnnotateReport struct {
	Messages models.Messages `json:"messages"`
	Files    []FileReport    `json:"files"`
}

type AnnotateFlow struct {
	annotator *annotator.Annotator
	writer    models.RecordWriter
	defaults  AnnotateRequest
	progress  func(FileReport)
}

func NewAnnotateFlow(appState *models.AppState) *AnnotateFlow {
	cfg := appState.Config.Annotator
	return &AnnotateFlow{
		annotator: annotator.NewAnnotator(
			appState.Analyzer,
			annotator.WithModelVersion(cfg.ModelVersion),
			annotator.WithScore(cfg.Score),
		),
		writer:   appState.RecordWriter,
		defaults: AnnotateRequest{OutputDir: cfg.OutputDir},
	}
}

// WithProgress registers fn to be called after each file is processed.
func (f *AnnotateFlow) WithProgress(fn func(FileReport)) *AnnotateFlow {
	f.progress = fn
	return f
}

// Run annotates every file into its own automation_<n>.json. Undecodable files and failed
// segments are reported and skipped; a write failure stops the remaining files.
func (f *AnnotateFlow) Run(ctx context.Context, req AnnotateRequest) *AnnotateReport {
	ctx, span := tracer.Start(ctx, "AnnotateFlow.Run")
	defer span.End()

	report := &AnnotateReport{Messages: models.Messages{}, Files: []FileReport{}}

	if req.OutputDir == "" {
		if err := mergo.Merge(&req, f.defaults); err != nil {
			report.Messages.Error(err.Error())
			return report
		}
	}
	if err := validate.Struct(req); err != nil {
		report.Messages.Report(models.NewBadRequestError("invalid annotate request: %v", err))
		return report
	}

	span.SetAttributes(
		attribute.Int("annotext.files", len(req.Files)),
		attribute.String("annotext.output_dir", req.OutputDir),
	)
	report.Messages.Info(fmt.Sprintf("Output JSON files will be saved in folder: %s", req.OutputDir))

	for _, file := range req.Files {
		fr, err := f.annotateFile(ctx, file, req, &report.Messages)
		report.Files = append(report.Files, fr)
		if f.progress != nil {
			f.progress(fr)
		}
		if err != nil {
			if ctx.Err() != nil {
				report.Messages.Error(fmt.Sprintf(
					"Annotation stopped at %s, nothing was saved for it: %v",
					file.Name, err,
				))
			} else {
				report.Messages.Error(fmt.Sprintf("Error saving JSON file: %v", err))
			}
			span.RecordError(err)
			return report
		}
	}

	return report
}

// annotateFile returns an error when writing fails or ctx is done. A done context never
// produces a file, since its segments would all carry empty predictions.
func (f *AnnotateFlow) annotateFile(
	ctx context.Context,
	file InputFile,
	req AnnotateRequest,
	msgs *models.Messages,
) (FileReport, error) {
	fr := FileReport{Name: file.Name}

	if !utf8.Valid(file.Content) {
		msgs.Error(fmt.Sprintf(
			"An error occurred while processing the text file %s: content is not valid UTF-8",
			file.Name,
		))
		return fr, nil
	}

	records, errs := f.annotator.AnnotateText(ctx, string(file.Content), req.Kinds)
	if err := ctx.Err(); err != nil {
		return fr, err
	}
	for _, err := range errs {
		msgs.Report(err)
		var analysisErr *models.AnalysisError
		if errors.As(err, &analysisErr) {
			fr.Failed++
		}
	}
	if records == nil && len(errs) > 0 {
		return fr, nil
	}

	fr.Segments = len(records)
	if len(records) == 0 {
		msgs.Report(models.NewEmptyInputError(fmt.Sprintf("No text segments found in %s.", file.Name)))
		return fr, nil
	}

	result, err := f.writer.Write(records, req.OutputDir)
	if err != nil {
		return fr, err
	}
	fr.Path, fr.Size = result.Path, result.Size

	log.Infof("annotated %s: %d segments, %d failed, saved to %s", file.Name, fr.Segments, fr.Failed, fr.Path)
	msgs.Success(fmt.Sprintf("Annotations saved to %s (%s)", result.Path, humanize.Bytes(uint64(result.Size))))
	return fr, nil
}
