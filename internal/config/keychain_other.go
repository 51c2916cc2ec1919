//go:build !darwin

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// secrets.json layout: {"<service>": {"<account>": "<value>"}}
type secretsFile map[string]map[string]string

func readSecrets() (secretsFile, error) {
	raw, err := os.ReadFile(secretsFilePath())
	if err != nil {
		return nil, err
	}
	var secrets secretsFile
	if err := json.Unmarshal(raw, &secrets); err != nil {
		return nil, fmt.Errorf("parsing secrets file: %w", err)
	}
	return secrets, nil
}

func keychainExec(service, account string) ([]byte, error) {
	secrets, err := readSecrets()
	if err != nil {
		return nil, fmt.Errorf("secret store not available: %w", err)
	}
	val, ok := secrets[service][account]
	if !ok {
		return nil, fmt.Errorf("account %q not found in service %q", account, service)
	}
	return []byte(val), nil
}

func keychainSet(service, account, value string) error {
	secrets, err := readSecrets()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if secrets == nil {
		secrets = make(secretsFile)
	}
	if secrets[service] == nil {
		secrets[service] = make(map[string]string)
	}
	secrets[service][account] = value

	raw, err := json.MarshalIndent(secrets, "", "  ")
	if err != nil {
		return err
	}
	if err := writePrivate(secretsFilePath(), raw); err != nil {
		return fmt.Errorf("writing secrets file: %w", err)
	}
	return nil
}
