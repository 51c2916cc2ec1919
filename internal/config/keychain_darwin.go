//go:build darwin

package config

import (
	"fmt"
	"os/exec"
)

func keychainExec(service, account string) ([]byte, error) {
	return exec.Command(
		"security", "find-generic-password",
		"-s", service,
		"-a", account,
		"-w",
	).Output()
}

func keychainSet(service, account, value string) error {
	// -U updates an existing item instead of failing.
	err := exec.Command(
		"security", "add-generic-password",
		"-U",
		"-s", service,
		"-a", account,
		"-w", value,
	).Run()
	if err != nil {
		return fmt.Errorf("writing keychain item: %w", err)
	}
	return nil
}
