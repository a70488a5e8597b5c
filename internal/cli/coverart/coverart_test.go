package coverart_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundkeep/soundkeep/internal/cli/coverart"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
}

func TestProcess_HideRenamesCovers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "album", "cover.jpg"))
	writeFile(t, filepath.Join(dir, "album", "track.flac"))

	res, err := coverart.Process(dir, true, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, 1, res.Renamed)
	assert.NoFileExists(t, filepath.Join(dir, "album", "cover.jpg"))
	assert.FileExists(t, filepath.Join(dir, "album", ".cover.jpg"))
	assert.FileExists(t, filepath.Join(dir, "album", "track.flac"))
}

func TestProcess_ShowReversesHide(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".cover.png"))

	res, err := coverart.Process(dir, false, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Renamed)
	assert.FileExists(t, filepath.Join(dir, "cover.png"))
	assert.NoFileExists(t, filepath.Join(dir, ".cover.png"))
}

func TestProcess_NeverClobbersExistingTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cover.jpeg"))
	writeFile(t, filepath.Join(dir, ".cover.jpeg"))

	res, err := coverart.Process(dir, true, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Renamed)
	assert.FileExists(t, filepath.Join(dir, "cover.jpeg"))
	assert.FileExists(t, filepath.Join(dir, ".cover.jpeg"))
}

func TestProcess_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cover.jpg"))

	first, err := coverart.Process(dir, true, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Renamed)

	second, err := coverart.Process(dir, true, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Renamed)
	assert.FileExists(t, filepath.Join(dir, ".cover.jpg"))
}

func TestProcess_IgnoresUnrelatedImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "folder.jpg"))
	writeFile(t, filepath.Join(dir, "back.png"))

	res, err := coverart.Process(dir, true, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, 0, res.Renamed)
}
