package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName marks a project directory and holds its settings.
const ConfigFileName = "folio.toml"

// ErrNoConfig is returned by FindRoot when no folio.toml exists above the start directory.
var ErrNoConfig = errors.New("no " + ConfigFileName + " found")

// FindRoot looks upwards from startDir for the nearest directory holding folio.toml
// and returns its absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoConfig
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
