package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/cli/config"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

const settingsTOML = `
[[repository]]
name = "acme/web"
paths = "apps/web/**,!apps/web/**/*.md"
app_name = "web"
history_same_branch = true
force_backend = "remote"

[[repository]]
name = "acme/api"
`

func TestParseSettings(t *testing.T) {
	settings, err := config.ParseSettings([]byte(settingsTOML))
	gt.NoError(t, err)
	gt.Equal(t, len(settings), 2)

	web := settings.Lookup(types.RepoID{Owner: "acme", Name: "web"})
	gt.Equal(t, web.Paths, "apps/web/**,!apps/web/**/*.md")
	gt.Equal(t, web.AppName, "web")
	gt.Equal(t, web.ForceBackend, model.BackendRemote)
	gt.NotNil(t, web.HistorySameBranch)
	gt.True(t, *web.HistorySameBranch)

	api := settings.Lookup(types.RepoID{Owner: "acme", Name: "api"})
	gt.Equal(t, api.ForceBackend, model.Backend(""))
	gt.V(t, api.HistorySameBranch).Nil()

	other := settings.Lookup(types.RepoID{Owner: "acme", Name: "other"})
	gt.Equal(t, other.Name, "acme/other")
	gt.Equal(t, other.Paths, "")
}

func TestParseSettings_Invalid(t *testing.T) {
	tests := map[string]string{
		"broken toml":     "[[repository]\nname = 1",
		"missing name":    "[[repository]]\npaths = \"src/**\"",
		"unknown backend": "[[repository]]\nname = \"acme/web\"\nforce_backend = \"ftp\"",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseSettings([]byte(data))
			gt.Error(t, err)
		})
	}
}

func TestDelta_LoadSettings(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		settings, err := (&config.Delta{}).LoadSettings()
		gt.NoError(t, err)
		gt.Equal(t, len(settings), 0)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		gt.NoError(t, os.WriteFile(path, []byte(settingsTOML), 0o600))

		settings, err := (&config.Delta{SettingsFile: path}).LoadSettings()
		gt.NoError(t, err)
		gt.Equal(t, len(settings), 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&config.Delta{SettingsFile: filepath.Join(t.TempDir(), "none.toml")}).LoadSettings()
		gt.Error(t, err)
	})
}

func TestDelta_Options(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "repos")
	opts, err := (&config.Delta{RepoDir: dir}).Options(nil)
	gt.NoError(t, err)
	gt.True(t, len(opts) > 0)

	info, err := os.Stat(dir)
	gt.NoError(t, err)
	gt.True(t, info.IsDir())
}

func TestDelta_RepoDirCheck(t *testing.T) {
	t.Run("no repo dir", func(t *testing.T) {
		cfg := &config.Delta{}
		gt.True(t, cfg.RepoDirCheck() == nil)
	})

	t.Run("writable dir leaves nothing behind", func(t *testing.T) {
		dir := t.TempDir()
		check := (&config.Delta{RepoDir: dir}).RepoDirCheck()
		gt.NoError(t, check(context.Background()))

		entries, err := os.ReadDir(dir)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 0)
	})

	t.Run("missing dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "gone")
		check := (&config.Delta{RepoDir: dir}).RepoDirCheck()
		gt.Error(t, check(context.Background()))
	})
}
