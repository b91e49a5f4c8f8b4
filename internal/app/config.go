package app

import (
	"encoding/json"
	"fmt"
	"os"

	"taskboard/internal/domain/errors"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir            string `json:"data_dir"`
	Backend            string `json:"backend"`
	GoogleClientID     string `json:"google_client_id"`
	GoogleClientSecret string `json:"google_client_secret"`
	GoogleRedirectURL  string `json:"google_redirect_url"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	defaultDataDir     = ".taskboard"
	defaultBackend     = BackendFile
	defaultRedirectURL = "urn:ietf:wg:oauth:2.0:oob"
)

// ReadConfig builds the configuration in layers: defaults, then an
// optional JSON config file, then environment variables (a .env file is
// honored when present). CLI flags are applied afterwards by the caller
// through ApplyOverrides. Bad values produce a warning and fall back,
// never a failure.
func ReadConfig(configFile string) *Config {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:           defaultDataDir,
		Backend:           defaultBackend,
		GoogleRedirectURL: defaultRedirectURL,
	}

	if jsonConfig := loadJSONConfig(configFile); jsonConfig != nil {
		cfg = jsonConfig
		if cfg.DataDir == "" {
			cfg.DataDir = defaultDataDir
		}
		if cfg.Backend == "" {
			cfg.Backend = defaultBackend
		}
		if cfg.GoogleRedirectURL == "" {
			cfg.GoogleRedirectURL = defaultRedirectURL
		}
	}

	cfg = applyEnvOverrides(cfg)

	if !validBackend(cfg.Backend) {
		fmt.Printf("Warning: %s - unknown backend %q, using %q\n", errors.ErrConfigInvalidFormat.Error(), cfg.Backend, defaultBackend)
		cfg.Backend = defaultBackend
	}

	return cfg
}

// ApplyOverrides layers non-empty CLI flag values on top of the config.
func (cfg *Config) ApplyOverrides(dataDir, backend string) {
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend != "" {
		cfg.Backend = backend
	}
}

func loadJSONConfig(configPath string) *Config {
	if configPath == "" {
		configPath = os.Getenv("CONFIG")
	}
	if configPath == "" {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Printf("Warning: %s %s: %v\n", errors.ErrConfigFileReadFailed.Error(), configPath, err)
		return nil
	}

	var jsonConfig Config
	if err := json.Unmarshal(data, &jsonConfig); err != nil {
		fmt.Printf("Warning: %s: %v\n", errors.ErrConfigParseFailed.Error(), err)
		return nil
	}
	return &jsonConfig
}

func applyEnvOverrides(cfg *Config) *Config {
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.Backend = backend
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		cfg.GoogleClientID = clientID
	}
	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		cfg.GoogleClientSecret = clientSecret
	}
	if redirectURL := os.Getenv("GOOGLE_REDIRECT_URL"); redirectURL != "" {
		cfg.GoogleRedirectURL = redirectURL
	}
	return cfg
}

func validBackend(backend string) bool {
	switch backend {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	}
	return false
}
