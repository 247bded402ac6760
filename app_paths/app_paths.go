package app_paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

const (
	appData       = "AppData"
	configDirEnv  = "ASC_META_CONFIG_DIR"
	xdgConfigHome = "XDG_CONFIG_HOME"
)

// Config path precedence:
// 1. ASC_META_CONFIG_DIR
// 2. XDG_CONFIG_HOME
// 3. AppData (windows only)
// 4. HOME
func ConfigDir() string {
	var path string

	if a := os.Getenv(configDirEnv); a != "" {
		path = a
	} else if b := os.Getenv(xdgConfigHome); b != "" {
		path = filepath.Join(b, "asc-meta")
	} else if c := os.Getenv(appData); runtime.GOOS == "windows" && c != "" {
		path = filepath.Join(c, "asc-meta")
	} else {
		d, _ := homedir.Dir()
		path = filepath.Join(d, ".config", "asc-meta")
	}

	return path
}

func ConfigPath(path string) string {
	return filepath.Join(ConfigDir(), path)
}
