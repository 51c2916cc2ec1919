package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockKeychain is a test double for the keychain interface.
type mockKeychain struct {
	value string
	err   error
}

func (m mockKeychain) Get(service, account string) (string, error) {
	return m.value, m.err
}

// memBackend is an in-memory ConfigBackend.
type memBackend struct {
	strings map[string]string
	ints    map[string]int
}

func newMemBackend() *memBackend {
	return &memBackend{strings: map[string]string{}, ints: map[string]int{}}
}

func (m *memBackend) GetString(key string) (string, bool, error) {
	v, ok := m.strings[key]
	return v, ok, nil
}

func (m *memBackend) GetInt(key string) (int, bool, error) {
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *memBackend) SetString(key, val string) error {
	m.strings[key] = val
	return nil
}

func (m *memBackend) SetInt(key string, val int) error {
	m.ints[key] = val
	return nil
}

func (m *memBackend) Delete(key string) error {
	delete(m.strings, key)
	delete(m.ints, key)
	return nil
}

// clearEnv blanks every config env var for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range specs {
		t.Setenv(s.env, "")
	}
}

// TestDefaults verifies all default values are applied when nothing is configured.
func TestDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "test-key")

	cfg, err := loadWith(newMemBackend(), mockKeychain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Inference.URL != "https://api-inference.huggingface.co/models/gpt2" {
		t.Errorf("Inference.URL = %q", cfg.Inference.URL)
	}
	if cfg.Inference.APIKey != "test-key" {
		t.Errorf("Inference.APIKey = %q, want test-key", cfg.Inference.APIKey)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

// TestBackendValues verifies values stored in the backend are applied.
func TestBackendValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "k")

	b := newMemBackend()
	b.ints["server.port"] = 9000
	b.strings["inference.url"] = "http://localhost:8080/models/distilgpt2"
	b.strings["log.level"] = "debug"

	cfg, err := loadWith(b, mockKeychain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Inference.URL != "http://localhost:8080/models/distilgpt2" {
		t.Errorf("Inference.URL = %q", cfg.Inference.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

// TestEnvOverride verifies that environment variables override backend values.
func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "env-key")
	t.Setenv("MINDSET_SERVER_PORT", "9100")

	b := newMemBackend()
	b.ints["server.port"] = 9000

	cfg, err := loadWith(b, mockKeychain{value: "keychain-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Inference.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.Inference.APIKey)
	}
}

func TestEnvOverride_BadInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "k")
	t.Setenv("MINDSET_SERVER_PORT", "not-a-port")

	cfg, err := loadWith(newMemBackend(), mockKeychain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want default 8501", cfg.Server.Port)
	}
}

// TestMissingAPIKey verifies a clear, fatal error when the key is missing everywhere.
func TestMissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := loadWith(newMemBackend(), mockKeychain{err: errors.New("not found")})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("error = %v, want ErrMissingAPIKey", err)
	}
	if !strings.Contains(err.Error(), "API Key not found!") {
		t.Errorf("error = %q, want user-facing message", err.Error())
	}
}

func TestMissingAPIKey_Whitespace(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "   ")

	if _, err := loadWith(newMemBackend(), mockKeychain{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestAPIKey_Trimmed(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", " hf_x \n")

	cfg, err := loadWith(newMemBackend(), mockKeychain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Inference.APIKey != "hf_x" {
		t.Errorf("APIKey = %q, want %q", cfg.Inference.APIKey, "hf_x")
	}
}

func TestAPIKey_BlankEnvFallsBackToKeychain(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "   ")

	cfg, err := loadWith(newMemBackend(), mockKeychain{value: "keychain-secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Inference.APIKey != "keychain-secret" {
		t.Errorf("APIKey = %q, want keychain-secret", cfg.Inference.APIKey)
	}
}

// TestSecretIgnoredInBackend verifies the API key is never read from the plain config backend.
func TestSecretIgnoredInBackend(t *testing.T) {
	clearEnv(t)

	b := newMemBackend()
	b.strings["inference.api_key"] = "plain-text-key"

	if _, err := loadWith(b, mockKeychain{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("error = %v, want ErrMissingAPIKey", err)
	}
}

// TestKeychainFallback verifies the secret store is consulted when env has no key.
func TestKeychainFallback(t *testing.T) {
	clearEnv(t)

	cfg, err := loadWith(newMemBackend(), mockKeychain{value: "keychain-secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Inference.APIKey != "keychain-secret" {
		t.Errorf("APIKey = %q, want keychain-secret", cfg.Inference.APIKey)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("HUGGINGFACE_API_KEY")
	os.Unsetenv("MINDSET_LOG_LEVEL")

	path := filepath.Join(t.TempDir(), ".env")
	content := "HUGGINGFACE_API_KEY=dotenv-key\nMINDSET_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	loadDotEnv(path)

	cfg, err := loadWith(newMemBackend(), mockKeychain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Inference.APIKey != "dotenv-key" {
		t.Errorf("APIKey = %q, want dotenv-key", cfg.Inference.APIKey)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadDotEnv_DoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("HUGGINGFACE_API_KEY=dotenv-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loadDotEnv(path)

	if got := os.Getenv("HUGGINGFACE_API_KEY"); got != "env-key" {
		t.Errorf("HUGGINGFACE_API_KEY = %q, want env-key", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	clearEnv(t)
	loadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))

	if got := os.Getenv("HUGGINGFACE_API_KEY"); got != "" {
		t.Errorf("HUGGINGFACE_API_KEY = %q, want empty", got)
	}
}

func TestSetKey(t *testing.T) {
	b := newMemBackend()

	if err := setKeyWith(b, "server.port", "9200"); err != nil {
		t.Fatalf("setting port: %v", err)
	}
	if b.ints["server.port"] != 9200 {
		t.Errorf("server.port = %d, want 9200", b.ints["server.port"])
	}

	if err := setKeyWith(b, "log.level", "warn"); err != nil {
		t.Fatalf("setting log level: %v", err)
	}
	if b.strings["log.level"] != "warn" {
		t.Errorf("log.level = %q, want warn", b.strings["log.level"])
	}

	if err := setKeyWith(b, "server.port", "high"); err == nil {
		t.Error("expected error for non-integer port")
	}
	if err := setKeyWith(b, "inference.api_key", "secret"); err == nil {
		t.Error("expected error when setting secret via config")
	}
	if err := setKeyWith(b, "nope", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestShowAll_HidesSecrets(t *testing.T) {
	cfg := defaults()
	cfg.Inference.APIKey = "hf_secret"

	for _, k := range ShowAll(cfg) {
		if k.Key == "inference.api_key" || strings.Contains(k.Value, "hf_secret") {
			t.Errorf("ShowAll exposed secret: %+v", k)
		}
	}
	if got, want := len(ShowAll(cfg)), len(ValidKeys()); got != want {
		t.Errorf("len(ShowAll) = %d, want %d", got, want)
	}
}
