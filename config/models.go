package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	NLP        NLPConfig        `mapstructure:"nlp" yaml:"nlp"`
	Annotator  AnnotatorConfig  `mapstructure:"annotator" yaml:"annotator"`
	Vectorizer VectorizerConfig `mapstructure:"vectorizer" yaml:"vectorizer"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Auth       AuthConfig       `mapstructure:"auth" yaml:"auth"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry" yaml:"telemetry"`
}

// NLPConfig selects and configures the linguistic pipeline.
type NLPConfig struct {
	// Analyzer is either "server" (remote NLP server) or "local" (in-process prose pipeline).
	Analyzer  string `mapstructure:"analyzer" yaml:"analyzer" jsonschema:"enum=server,enum=local"`
	ServerURL string `mapstructure:"server_url" yaml:"server_url"`
	Language  string `mapstructure:"language" yaml:"language"`
	// TimeoutSeconds bounds a single request to the NLP server.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RetryMax       int `mapstructure:"retry_max" yaml:"retry_max"`
}

type AnnotatorConfig struct {
	ModelVersion string `mapstructure:"model_version" yaml:"model_version"`
	// Score is a placeholder confidence attached to every prediction.
	Score     float64 `mapstructure:"score" yaml:"score"`
	OutputDir string  `mapstructure:"output_dir" yaml:"output_dir"`
}

type VectorizerConfig struct {
	// StopWords is empty (no stop word removal) or "english".
	StopWords string `mapstructure:"stop_words" yaml:"stop_words" jsonschema:"enum=,enum=english"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

type OutputConfig struct {
	// Naming is "sequential" (automation_<n>.json, vec_<i>.npy) or "unique" (uuid suffixes).
	Naming string `mapstructure:"naming" yaml:"naming" jsonschema:"enum=sequential,enum=unique"`
}

type ServerConfig struct {
	// Host defaults to loopback. The web pages write files and are never behind auth.
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
	// MaxRequestSize is the upload limit in bytes.
	MaxRequestSize int64 `mapstructure:"max_request_size" yaml:"max_request_size"`
	WebEnabled     bool  `mapstructure:"web_enabled" yaml:"web_enabled"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format" jsonschema:"enum=text,enum=json"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret" yaml:"secret"`
	Required bool   `mapstructure:"required" yaml:"required"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// OTLPEndpoint is a host:port of an OTLP/HTTP collector.
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
}
