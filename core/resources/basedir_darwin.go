//go:build darwin

package resources

import "path/filepath"

// App bundles keep resources beside the MacOS directory holding the binary.
func packagedDir(exeDir string) string {
	return filepath.Join(exeDir, "..", "Resources")
}
