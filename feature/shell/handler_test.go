package shell

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asset-bridge/core/resources"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeAsset(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func modelZip(t *testing.T, entries map[string]string, order ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range order {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func setupTestApp(t *testing.T) (*fiber.App, string) {
	base := t.TempDir()
	resolver, err := resources.NewResolver(resources.Config{BaseDir: base})
	require.NoError(t, err)

	app := fiber.New()
	feature := NewFeature(resolver, zap.NewNop(), "/commands")
	require.NoError(t, feature.Load(app))
	return app, base
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload["error"]
}

func TestHandleGreet(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("Query", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/greet?name=Ada", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Hello, Ada! You've been greeted from Go!", body["message"])
	})

	t.Run("Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/commands/greet", strings.NewReader(`{"name":"Grace"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Hello, Grace! You've been greeted from Go!", body["message"])
	})
}

func TestHandleLoadAudio(t *testing.T) {
	app, base := setupTestApp(t)
	wav := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	writeAsset(t, filepath.Join(base, "resources", "audio", "click.wav"), wav)
	writeAsset(t, filepath.Join(base, "resources", "audio", "ui", "hover.wav"), []byte("hover"))

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/audio/click.wav", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, fiber.MIMEOctetStream, resp.Header.Get(fiber.HeaderContentType))

		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, wav, got)
	})

	t.Run("Nested", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/audio/ui%2Fhover.wav", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("hover"), got)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/audio/missing.wav", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp.Body), "missing.wav")
	})
}

func TestHandleLoadModel(t *testing.T) {
	app, base := setupTestApp(t)
	writeAsset(t, filepath.Join(base, "resources", "models", "robot.zip"), modelZip(t,
		map[string]string{"robot.fbx": "fbx-scene", "robot.png": "texture"}, "robot.png", "robot.fbx"))
	writeAsset(t, filepath.Join(base, "resources", "models", "textures.zip"), modelZip(t,
		map[string]string{"robot.png": "texture"}, "robot.png"))
	writeAsset(t, filepath.Join(base, "resources", "models", "broken.zip"), []byte("garbage"))

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/models/robot.zip", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("fbx-scene"), got)
	})

	t.Run("NoFBX", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/models/textures.zip", nil))
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp.Body), "no .fbx entry found")
	})

	t.Run("Corrupt", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/models/broken.zip", nil))
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp.Body), "broken.zip")
	})

	t.Run("Traversal", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/commands/models/..%2F..%2Fsecret.zip", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"InvalidName", resources.ErrInvalidName, 400},
		{"NotFound", resources.ErrNotFound, 404},
		{"ArchiveOpen", resources.ErrArchiveOpen, 422},
		{"NoEntry", resources.ErrNoMatchingEntry, 422},
		{"EntryRead", resources.ErrEntryRead, 422},
		{"Open", resources.ErrOpen, 500},
		{"Other", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
