package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv populates the process environment from path. A missing file is
// not an error; any other failure is reported and ignored.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "[WARN] could not load %s: %v\n", path, err)
	}
}
