package cmd

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
)

var errFlowFailed = errors.New("one or more errors were reported")

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, done, err := setup(cmd)
	if err != nil || done {
		return err
	}

	parsedKinds, err := models.ParseAnalysisKinds(kinds)
	if err != nil {
		return err
	}

	files := make([]pipeline.InputFile, 0, len(args))
	for _, path := range args {
		content, err := readFile(path)
		if err != nil {
			return err
		}
		files = append(files, pipeline.InputFile{Name: filepath.Base(path), Content: content})
	}

	ctx := context.Background()
	appState, err := NewAppState(ctx, cfg)
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(files))
	bar.AppendCompleted()
	bar.PrependElapsed()

	report := pipeline.NewAnnotateFlow(appState).
		WithProgress(func(pipeline.FileReport) { bar.Incr() }).
		Run(ctx, pipeline.AnnotateRequest{
			Files:     files,
			Kinds:     parsedKinds,
			OutputDir: outputDir,
		})
	uiprogress.Stop()

	printMessages(cmd.OutOrStdout(), report.Messages)
	if report.Messages.HasErrors() {
		return errFlowFailed
	}
	return nil
}
