package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver locates assets and reads them into memory.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	devMode     bool
	projectRoot string
	baseDir     string
}

// NewResolver creates a Resolver from configuration.
//
// Dev mode requires a project root. When no base directory is configured it is
// derived from the executable; if that fails the resolver still works but only
// the development tree is searched.
func NewResolver(cfg Config) (*Resolver, error) {
	r := &Resolver{devMode: cfg.DevMode}

	if cfg.DevMode {
		if cfg.ProjectRoot == "" {
			return nil, ErrProjectRoot
		}
		root, err := filepath.Abs(cfg.ProjectRoot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProjectRoot, err)
		}
		r.projectRoot = root
	}

	if cfg.BaseDir != "" {
		base, err := filepath.Abs(cfg.BaseDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBaseDir, err)
		}
		r.baseDir = base
	} else if base, err := PackagedBaseDir(); err == nil {
		r.baseDir = base
	}

	return r, nil
}

// DevMode reports whether the development tree is searched first.
func (r *Resolver) DevMode() bool {
	return r.devMode
}

// BaseDir returns the packaged-resource base directory, or "" if unknown.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Locate returns the path Resolve would read for the asset.
func (r *Resolver) Locate(c Category, name string) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}

	if r.devMode {
		if p := DevPath(r.projectRoot, c, name); exists(p) {
			return p, nil
		}
	}

	if r.baseDir != "" {
		for _, candidate := range Candidates(c, name) {
			if p := filepath.Join(r.baseDir, candidate); exists(p) {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("%w: could not find %s %s in resources", ErrNotFound, c.noun(), name)
}

// Resolve returns the bytes of the named asset. For Models the first .fbx
// entry of the resolved archive is returned instead of the archive itself.
//
// The existence check and the read are not atomic; a file removed in between
// surfaces as an open error.
func (r *Resolver) Resolve(c Category, name string) ([]byte, error) {
	path, err := r.Locate(c, name)
	if err != nil {
		return nil, err
	}
	if c.Zipped() {
		return ExtractFirst(path, ModelExtension)
	}
	return ReadFile(path)
}

// LoadAudio resolves an audio asset.
func (r *Resolver) LoadAudio(filename string) ([]byte, error) {
	return r.Resolve(Audio, filename)
}

// LoadModelFBX resolves a model archive and returns its first FBX entry.
func (r *Resolver) LoadModelFBX(zipFilename string) ([]byte, error) {
	return r.Resolve(Models, zipFilename)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
