package paths

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestConfigHome(t *testing.T) {
	if got := ConfigHome(); got != xdg.ConfigHome {
		t.Errorf("ConfigHome() = %q, want %q", got, xdg.ConfigHome)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "")
		want := filepath.Join(xdg.ConfigHome, AppName)
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnv, dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
		if got, want := ConfigFile(), filepath.Join(dir, ConfigFileName); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
	})
}
