package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/getzep/annotext/pkg/filestore"
	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/pipeline"
	"github.com/getzep/annotext/pkg/vectorizer"
)

// runVectorize does not need the NLP pipeline, so no analyzer is initialized.
func runVectorize(cmd *cobra.Command, args []string) error {
	cfg, done, err := setup(cmd)
	if err != nil || done {
		return err
	}

	content, err := readFile(args[0])
	if err != nil {
		return err
	}

	appState := &models.AppState{
		Vectorizer:   vectorizer.NewTFIDF(vectorizer.WithStopWords(cfg.Vectorizer.StopWords)),
		VectorWriter: filestore.NewVectorWriter(cfg.Output.Naming),
		Config:       cfg,
	}

	report := pipeline.NewVectorizeFlow(appState).Run(context.Background(), pipeline.VectorizeRequest{
		File:      pipeline.InputFile{Name: filepath.Base(args[0]), Content: content},
		OutputDir: outputDir,
	})

	printMessages(cmd.OutOrStdout(), report.Messages)
	if report.Messages.HasErrors() {
		return errFlowFailed
	}
	return nil
}
