//go:build darwin

package config

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const defaultsDomain = "com.kalambet.mindset"

func apiKeyHint() string {
	return " or store it in macOS Keychain (service: mindset, account: huggingface_api_key)"
}

// defaultsBackend reads and writes UserDefaults through the `defaults` CLI.
type defaultsBackend struct {
	domain string
}

func newPlatformBackend() ConfigBackend {
	return &defaultsBackend{domain: defaultsDomain}
}

func (b *defaultsBackend) GetString(key string) (string, bool, error) {
	out, err := exec.Command("defaults", "read", b.domain, key).CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		// Exit status 1 means the key is not set.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading default %q: %w (output: %s)", key, err, s)
	}
	return s, true, nil
}

func (b *defaultsBackend) GetInt(key string) (int, bool, error) {
	s, ok, err := b.GetString(key)
	if !ok || err != nil {
		return 0, ok, err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return i, true, nil
}

func (b *defaultsBackend) SetString(key, val string) error {
	return b.write(key, "-string", val)
}

func (b *defaultsBackend) SetInt(key string, val int) error {
	return b.write(key, "-int", strconv.Itoa(val))
}

func (b *defaultsBackend) Delete(key string) error {
	return exec.Command("defaults", "delete", b.domain, key).Run()
}

func (b *defaultsBackend) write(key, typeFlag, val string) error {
	if out, err := exec.Command("defaults", "write", b.domain, key, typeFlag, val).CombinedOutput(); err != nil {
		return fmt.Errorf("writing default %q: %w (output: %s)", key, err, strings.TrimSpace(string(out)))
	}
	return nil
}
