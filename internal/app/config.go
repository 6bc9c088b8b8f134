package app

import (
	"github.com/spf13/viper"

	"github.com/krishvadhani19/resemble-project/internal/resemble"
)

type Config struct {
	// Resemble API credential. Empty when unset; calls are then rejected
	// by the provider, not locally.
	APIKey string

	// Provider endpoints, overridable for tests and self-hosted clusters.
	SynthesizeURL string
	VoicesURL     string

	// Defaults applied when a tool call omits the argument.
	VoiceUUID    string
	OutputFormat string

	// Directory synthesized audio is written to.
	OutputDir string

	LogLevel  string
	SentryDSN string
}

// defaultVoiceUUID is the sample voice the synthesis API itself defaults to.
const defaultVoiceUUID = "55592656"

// LoadConfig reads configuration once at startup: defaults, then an optional
// resemble-server.yaml, then environment variables. The returned value is
// passed around explicitly; nothing reads ambient process state at call time.
func LoadConfig() Config {
	v := viper.New()
	v.SetConfigName("resemble-server")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.resemble-server")

	v.SetDefault("synthesize_url", resemble.DefaultSynthesizeURL)
	v.SetDefault("voices_url", resemble.DefaultVoicesURL)
	v.SetDefault("voice_uuid", defaultVoiceUUID)
	v.SetDefault("output_format", "mp3")
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "info")

	v.BindEnv("api_key", "RESEMBLE_API_KEY")
	v.BindEnv("synthesize_url", "RESEMBLE_SYNTHESIZE_URL")
	v.BindEnv("voices_url", "RESEMBLE_VOICES_URL")
	v.BindEnv("voice_uuid", "RESEMBLE_VOICE_UUID")
	v.BindEnv("output_format", "RESEMBLE_OUTPUT_FORMAT")
	v.BindEnv("output_dir", "RESEMBLE_OUTPUT_DIR")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("sentry_dsn", "SENTRY_DSN")

	// The config file is optional; env and defaults are enough to run.
	v.ReadInConfig()

	return Config{
		APIKey:        v.GetString("api_key"),
		SynthesizeURL: v.GetString("synthesize_url"),
		VoicesURL:     v.GetString("voices_url"),
		VoiceUUID:     v.GetString("voice_uuid"),
		OutputFormat:  v.GetString("output_format"),
		OutputDir:     v.GetString("output_dir"),
		LogLevel:      v.GetString("log_level"),
		SentryDSN:     v.GetString("sentry_dsn"),
	}
}
