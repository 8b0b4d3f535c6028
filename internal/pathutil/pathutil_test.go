package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "bell", StripExtension("bell.ogg"))
	assert.Equal(t, "bell.old", StripExtension("bell.old.mp3"))
	assert.Equal(t, "bell", StripExtension("bell"))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv(EnvVar, "dev")

	xdg.Reload()

	p := &Paths{
		configDir:      "focustab",
		configFileName: "config.yml",
		dbFileName:     "focustab.db",
		sqliteFileName: "focustab.sqlite",
		logFileName:    "focustab.log",
	}

	p.applyEnvironmentOverrides()
	require.NoError(t, p.computePaths())

	assert.Equal(t, "config_dev.yml", filepath.Base(p.configFilePath))
	assert.Equal(t, "focustab_dev.db", filepath.Base(p.dbFilePath))
	assert.Equal(t, "focustab_dev.sqlite", filepath.Base(p.sqliteFilePath))
	assert.Equal(
		t,
		filepath.Join(p.dataDir, "log", "focustab_dev.log"),
		p.logFilePath,
	)
}
