// Package shell implements the commands the desktop shell invokes on the backend.
//
// # Commands
//
//   - greet: formats a greeting, no I/O.
//   - load_audio_asset: resolves an audio file and returns its bytes.
//   - load_model_fbx_from_zip: resolves a model archive and returns its first .fbx entry.
//
// Asset lookups are delegated to core/resources. Failures are returned to the
// caller as readable messages; nothing is retried.
//
// # HTTP Endpoints
//
// Mounted under the configured command prefix (default /commands):
//
//   - GET  /greet?name=Ada
//   - POST /greet {"name":"Ada"}
//   - GET  /audio/{filename}
//   - GET  /models/{zip_filename}
package shell
