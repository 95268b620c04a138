// Package integrity verifies that an installation ships every asset it needs.
//
// A YAML manifest lists the required assets per category:
//
//	audio:
//	  - click.wav
//	models:
//	  - robot.zip
//
// Each entry is resolved the same way the shell commands resolve it. Model
// archives are also extracted, so an archive without an .fbx entry is
// reported as an error rather than as present.
//
// # HTTP Endpoints
//
//   - GET /integrity : checks the configured manifest.
//   - POST /integrity : checks the manifest sent as JSON in the body.
package integrity
