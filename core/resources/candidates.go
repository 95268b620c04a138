package resources

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Candidates returns the relative paths tried under the packaged-resource base
// directory, highest priority first.
func Candidates(c Category, name string) []string {
	return []string{
		filepath.Join("resources", c.Dir(), name),
		filepath.Join("resources", name),
		filepath.Join(c.Dir(), name),
		filepath.Clean(name),
	}
}

// DevPath returns the development-tree location of an asset.
func DevPath(projectRoot string, c Category, name string) string {
	return filepath.Join(projectRoot, "resources", c.Dir(), name)
}

// ValidateName rejects names that cannot be resolved safely: empty names,
// absolute paths and paths that climb above the search root.
// Nested names such as "sfx/click.wav" are allowed.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}

	clean := filepath.ToSlash(filepath.Clean(name))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %q escapes the resource directory", ErrInvalidName, name)
	}
	return nil
}
