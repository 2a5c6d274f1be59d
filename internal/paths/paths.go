package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user configuration directory.
const AppName = "checktree"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "CHECKTREE_CONFIG_DIR"

// ConfigFileName is the configuration file looked up in each search path.
const ConfigFileName = "config.yaml"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the checktree configuration directory: $CHECKTREE_CONFIG_DIR
// when set, otherwise <ConfigHome>/checktree.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
