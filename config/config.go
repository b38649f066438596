package config

import (
	"errors"
	"strings"

	"github.com/getzep/annotext/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const (
	AnalyzerServer = "server"
	AnalyzerLocal  = "local"

	NamingSequential = "sequential"
	NamingUnique     = "unique"

	StopWordsEnglish = "english"
)

var defaults = map[string]any{
	"nlp.analyzer":            AnalyzerServer,
	"nlp.server_url":          "http://localhost:5557",
	"nlp.language":            "en",
	"nlp.timeout_seconds":     30,
	"nlp.retry_max":           3,
	"annotator.model_version": "one",
	"annotator.score":         0.5,
	"annotator.output_dir":    "./data/automation_json",
	"vectorizer.stop_words":   "",
	"vectorizer.output_dir":   "./data/vector_data",
	"output.naming":           NamingSequential,
	"server.host":             "127.0.0.1",
	"server.port":             8000,
	"server.max_request_size": int64(32 << 20),
	"server.web_enabled":      true,
	"log.level":               "info",
	"log.format":              "text",
	"auth.required":           false,
	"telemetry.enabled":       false,
	"telemetry.otlp_endpoint": "localhost:4318",
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// When configFile is empty a missing config.yaml is not an error and defaults apply.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("ANNOTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config.yaml not found, using defaults")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	if err := v.BindEnv("auth.secret", "ANNOTEXT_AUTH_SECRET"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.NLP.Analyzer {
	case AnalyzerServer, AnalyzerLocal:
	default:
		return errors.New("nlp.analyzer must be one of: server, local")
	}
	switch cfg.Output.Naming {
	case NamingSequential, NamingUnique:
	default:
		return errors.New("output.naming must be one of: sequential, unique")
	}
	switch cfg.Vectorizer.StopWords {
	case "", StopWordsEnglish:
	default:
		return errors.New("vectorizer.stop_words must be empty or english")
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level and format based on the config file.
// Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	if cfg.Log.Format == "json" {
		internal.SetJSONFormat()
	}
	internal.GetLogger().Info("Log level set to: ", level)
}
