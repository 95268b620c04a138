package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// PackagedBaseDir returns the directory bundled resources are installed under,
// derived from the location of the running executable.
func PackagedBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBaseDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return packagedDir(filepath.Dir(exe)), nil
}
