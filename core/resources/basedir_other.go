//go:build !darwin

package resources

func packagedDir(exeDir string) string {
	return exeDir
}
