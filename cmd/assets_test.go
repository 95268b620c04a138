package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputPath = ""

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	err := RootCmd.Execute()
	return out.String(), err
}

func TestGreetCommand(t *testing.T) {
	out, err := run(t, "greet", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada! You've been greeted from Go!\n", out)
}

func TestAudioCommand(t *testing.T) {
	base := t.TempDir()
	p := filepath.Join(base, "resources", "audio", "click.wav")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("RIFFWAVE"), 0o644))

	t.Run("Stdout", func(t *testing.T) {
		out, err := run(t, "audio", "click.wav", "--base-dir", base, "--config-dir", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "RIFFWAVE", out)
	})

	t.Run("File", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "out.wav")
		_, err := run(t, "audio", "click.wav", "--base-dir", base, "--config-dir", t.TempDir(), "-o", dst)
		require.NoError(t, err)

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("RIFFWAVE"), got)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := run(t, "audio", "gone.wav", "--base-dir", base, "--config-dir", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gone.wav")
	})
}

func TestIntegrityCommand(t *testing.T) {
	base := t.TempDir()
	p := filepath.Join(base, "click.wav")
	require.NoError(t, os.WriteFile(p, []byte("click"), 0o644))

	manifest := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("audio: [click.wav, gone.wav]\n"), 0o644))

	out, err := run(t, "integrity", "--base-dir", base, "--config-dir", t.TempDir(), "--manifest", manifest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 assets unavailable")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "total=2 ok=1 missing=1 failed=0")
}
