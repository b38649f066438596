package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/auth"
	"github.com/getzep/annotext/pkg/filestore"
	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/nlp"
	"github.com/getzep/annotext/pkg/server"
	"github.com/getzep/annotext/pkg/vectorizer"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the annotext server
func run(cmd *cobra.Command) error {
	cfg, done, err := setup(cmd)
	if err != nil || done {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := setupTracing(ctx, cfg)
	defer shutdownTracing()

	log.Infof("Starting annotext server version %s", config.VersionString)

	appState, err := NewAppState(ctx, cfg)
	if err != nil {
		log.Errorf("Error initializing annotext: %s", err)
		return err
	}

	srv, err := server.Create(appState)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on: %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setup loads the configuration and handles the options that do not need the NLP
// pipeline. done is true when such an option was handled.
func setup(cmd *cobra.Command) (cfg *config.Config, done bool, err error) {
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		log.Errorf("Error configuring annotext: %s", err)
		return nil, false, err
	}
	config.SetLogLevel(cfg)

	done, err = handleCLIOptions(cmd.OutOrStdout(), cfg)
	return cfg, done, err
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(out io.Writer, cfg *config.Config) (bool, error) {
	switch {
	case showVersion:
		fmt.Fprintln(out, config.VersionString)
		return true, nil
	case generateKey:
		token, err := auth.GenerateJWT(cfg)
		if err != nil {
			return true, err
		}
		fmt.Fprintln(out, token)
		return true, nil
	case dumpConfig:
		return true, dumpConfigYAML(out, cfg)
	}
	return false, nil
}

// dumpConfigYAML writes the effective configuration with the auth secret redacted.
func dumpConfigYAML(out io.Writer, cfg *config.Config) error {
	redacted := *cfg
	if redacted.Auth.Secret != "" {
		redacted.Auth.Secret = "********"
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&redacted); err != nil {
		return err
	}
	return enc.Close()
}

func setupTracing(ctx context.Context, cfg *config.Config) func() {
	if !cfg.Telemetry.Enabled {
		return func() {}
	}
	shutdown, err := internal.SetupTracing(ctx, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Warnf("Tracing disabled: %s", err)
		return func() {}
	}
	log.Infof("Exporting traces to %s", cfg.Telemetry.OTLPEndpoint)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Errorf("Error flushing traces: %s", err)
		}
	}
}

// NewAppState creates an AppState from the config file / ENV. It fails when the NLP
// pipeline cannot be initialized.
func NewAppState(ctx context.Context, cfg *config.Config) (*models.AppState, error) {
	analyzer, err := nlp.NewAnalyzer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &models.AppState{
		Analyzer:     analyzer,
		Vectorizer:   vectorizer.NewTFIDF(vectorizer.WithStopWords(cfg.Vectorizer.StopWords)),
		RecordWriter: filestore.NewRecordWriter(cfg.Output.Naming),
		VectorWriter: filestore.NewVectorWriter(cfg.Output.Naming),
		Config:       cfg,
	}, nil
}

func printMessages(out io.Writer, msgs models.Messages) {
	for _, m := range msgs {
		fmt.Fprintf(out, "[%s] %s\n", m.Level, m.Text)
	}
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return content, nil
}
