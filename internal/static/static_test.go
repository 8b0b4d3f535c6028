package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	assert.FileExists(t, filepath.Join(dir, IconFile))
	assert.FileExists(t, filepath.Join(dir, "sounds", "chime.wav"))
}

func TestInstallKeepsUserFiles(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, IconFile)

	require.NoError(t, os.WriteFile(icon, []byte("mine"), 0o600))
	require.NoError(t, Install(dir))

	b, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(b))
}
