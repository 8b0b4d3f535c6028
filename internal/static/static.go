// Package static embeds the bundled assets and installs them into the data
// directory
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/focustab/internal/osutil"
)

const (
	filesDir = "files"

	// IconFile is the notification icon, relative to the data directory.
	IconFile = "icon.png"
)

//go:embed files
var embeddedFiles embed.FS

// Install copies the embedded files into dataDir. Files that already exist
// are left alone so that users can replace them.
func Install(dataDir string) error {
	root, err := fs.Sub(embeddedFiles, filesDir)
	if err != nil {
		return err
	}

	return fs.WalkDir(
		root,
		".",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			destPath := filepath.Join(dataDir, filepath.FromSlash(path))

			if _, err := os.Stat(destPath); err == nil {
				return nil
			}

			b, err := fs.ReadFile(root, path)
			if err != nil {
				return errInstall.Fmt(path).Wrap(err)
			}

			err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
			if err != nil {
				return errInstall.Fmt(path).Wrap(err)
			}

			err = os.WriteFile(destPath, b, osutil.FilePermission)
			if err != nil {
				return errInstall.Fmt(path).Wrap(err)
			}

			return nil
		},
	)
}
