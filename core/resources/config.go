package resources

// Config holds configuration for asset resolution.
type Config struct {
	// DevMode enables the development-tree lookup before packaged resources.
	DevMode bool `mapstructure:"dev_mode" default:"false"`
	// ProjectRoot is the source tree root searched in dev mode.
	ProjectRoot string `mapstructure:"project_root" default:""`
	// BaseDir overrides the packaged-resource base directory.
	// When empty it is derived from the running executable.
	BaseDir string `mapstructure:"base_dir" default:""`
	// Manifest is the YAML file listing the assets an installation must provide.
	Manifest string `mapstructure:"manifest" default:"assets.yaml"`
}
