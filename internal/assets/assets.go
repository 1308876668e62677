// Package assets embeds the notification icon shipped with pomo.
package assets

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed icon.png
var assetsFS embed.FS

// MaterializeIcon writes the embedded icon into the user cache directory
// and returns its path, so external notification tools can reference it by
// file. Idempotent; an already-materialized icon is reused.
func MaterializeIcon() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(cacheDir, "pomo", "icon.png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	data, err := assetsFS.ReadFile("icon.png")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
