package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: nothing; the app must start on a fresh machine with no setup
// - default: everything, tuned for a single-shop installation
// -----------------------------------------------------------------------------

type Config struct {
	Storage StorageConfig
	Log     LogConfig
}

type StorageConfig struct {
	// Backend selects the key-value provider: "bolt", "file" or "memory".
	Backend string `envconfig:"BARBER_STORAGE_BACKEND" default:"bolt"`
	// DataDir holds the bolt file or the per-key JSON files.
	DataDir string `envconfig:"BARBER_DATA_DIR" default:"."`
	// BoltFile is the database filename inside DataDir.
	BoltFile string `envconfig:"BARBER_BOLT_FILE" default:"barber-agenda.db"`
}

type LogConfig struct {
	Level string `envconfig:"BARBER_LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend:  "memory",
			DataDir:  ".",
			BoltFile: "barber-agenda-test.db",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
