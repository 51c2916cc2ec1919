//go:build !darwin

package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

func apiKeyHint() string {
	return " or run `mindset config set-key <key>`"
}

// fileBackend keeps config as a flat JSON object keyed by dotted names,
// e.g. {"server.port": 8501, "log.level": "debug"}.
type fileBackend struct {
	path string
	data map[string]any
}

func newPlatformBackend() ConfigBackend {
	return newFileBackend(configFilePath())
}

func newFileBackend(path string) *fileBackend {
	b := &fileBackend{path: path, data: make(map[string]any)}
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		fmt.Fprintf(os.Stderr, "[WARN] could not read config file %s: %v. Using default values.\n", path, err)
	default:
		if err := json.Unmarshal(raw, &b.data); err != nil {
			fmt.Fprintf(os.Stderr, "[WARN] could not parse config file %s: %v. Using default values.\n", path, err)
			b.data = make(map[string]any)
		}
	}
	return b
}

func (b *fileBackend) save() error {
	raw, err := json.MarshalIndent(b.data, "", "  ")
	if err != nil {
		return err
	}
	if err := writePrivate(b.path, raw); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (b *fileBackend) GetString(key string) (string, bool, error) {
	v, ok := b.data[key]
	if !ok {
		return "", false, nil
	}
	if s, isString := v.(string); isString {
		return s, true, nil
	}
	return fmt.Sprintf("%v", v), true, nil
}

func (b *fileBackend) GetInt(key string) (int, bool, error) {
	v, ok := b.data[key]
	if !ok {
		return 0, false, nil
	}
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) || val < math.MinInt32 || val > math.MaxInt32 {
			return 0, true, fmt.Errorf("value %v for %s is not a valid integer", val, key)
		}
		return int(val), true, nil
	case string:
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0, true, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return i, true, nil
	default:
		return 0, true, fmt.Errorf("invalid type %T for %s", v, key)
	}
}

func (b *fileBackend) SetString(key, val string) error {
	b.data[key] = val
	return b.save()
}

func (b *fileBackend) SetInt(key string, val int) error {
	b.data[key] = val
	return b.save()
}

func (b *fileBackend) Delete(key string) error {
	delete(b.data, key)
	return b.save()
}
