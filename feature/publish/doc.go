// Package publish uploads resolved assets to object storage.
//
// Assets are resolved exactly as the shell commands resolve them, so what
// lands in the bucket is what the desktop shell would have loaded: audio files
// as stored, model archives as their extracted FBX scene.
//
// # Object Keys
//
//   - audio/{name}
//   - models/{name without extension}.fbx
//
// Uploads run concurrently, bounded by storage.workers. A failing asset does
// not stop the others; all failures are returned together.
//
// # HTTP Endpoints
//
//   - POST /publish {"category":"audio","names":["click.wav"]}
package publish
