// Package resources resolves named assets to raw bytes.
//
// An asset is identified by a Category (audio, models) and a file name. The
// Resolver looks for it in a fixed priority order and returns the bytes of the
// first path that exists on disk.
//
// # Search Order
//
//  1. Development tree (only when dev mode is enabled):
//     {project_root}/resources/{category}/{name}
//  2. Packaged resources, relative to the packaged-resource base directory:
//     resources/{category}/{name}, resources/{name}, {category}/{name}, {name}
//
// A development path that exists short-circuits the search, even if reading it
// fails afterwards.
//
// # Model Archives
//
// Model assets are shipped as zip archives. For the Models category the
// resolved file is opened as an archive and the decompressed content of the
// first entry ending in .fbx (case-insensitive, archive order) is returned.
//
// # Errors
//
// Every failure wraps one of the sentinel errors in errors.go, so callers can
// branch with errors.Is while still presenting the full message to users.
//
// # Usage
//
//	r, err := resources.NewResolver(cfg.Resources)
//	if err != nil {
//	    return err
//	}
//	wav, err := r.LoadAudio("click.wav")
//	fbx, err := r.LoadModelFBX("robot.zip")
package resources
