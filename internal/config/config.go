package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	secretService = "mindset"
	secretAccount = "huggingface_api_key"
	dotEnvFile    = ".env"
)

// ErrMissingAPIKey is returned by Load when no credential is configured.
// It is fatal: callers must stop before creating any inference client.
var ErrMissingAPIKey = errors.New("API Key not found! Make sure you have a `.env` file.")

type Config struct {
	Server    ServerConfig
	Inference InferenceConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type InferenceConfig struct {
	URL    string
	APIKey string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8501,
		},
		Inference: InferenceConfig{
			URL: "https://api-inference.huggingface.co/models/gpt2",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the platform-native backend, a .env file in
// the working directory, environment variables, and the platform secret store.
//
// On macOS the backend is UserDefaults (domain: com.kalambet.mindset) and the
// API key falls back to macOS Keychain.
// Elsewhere the backend is a JSON file at $XDG_CONFIG_HOME/mindset/config.json
// and the API key falls back to $XDG_DATA_HOME/mindset/secrets.json.
//
// Variables from .env never override ones already set in the environment.
func Load() (Config, error) {
	loadDotEnv(dotEnvFile)
	return loadWith(newPlatformBackend(), keychainReader{})
}

// keychain abstracts secret store access for testing.
type keychain interface {
	Get(service, account string) (string, error)
}

func loadWith(b ConfigBackend, kc keychain) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	cfg.Inference.APIKey = strings.TrimSpace(cfg.Inference.APIKey)
	if cfg.Inference.APIKey == "" {
		if key, err := kc.Get(secretService, secretAccount); err == nil && key != "" {
			cfg.Inference.APIKey = key
		}
	}

	if cfg.Inference.APIKey == "" {
		return Config{}, fmt.Errorf("%w Set HUGGINGFACE_API_KEY%s", ErrMissingAPIKey, apiKeyHint())
	}

	return cfg, nil
}

// keychainReader reads from the platform secret store.
type keychainReader struct{}

func (keychainReader) Get(service, account string) (string, error) {
	out, err := keychainExec(service, account)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// SetAPIKey stores the API key in the platform secret store.
func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key must not be empty")
	}
	return keychainSet(secretService, secretAccount, key)
}
