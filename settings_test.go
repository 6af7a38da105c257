package areatracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(newFlags(t))
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{
		DataDir:       "MapData",
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
		NoticeSeconds: 8,
	}
	if s != want {
		t.Errorf("defaults = %+v, want %+v", s, want)
	}
}

func TestLoadSettingsPrecedence(t *testing.T) {
	t.Setenv("AREATRACKER_LOG_LEVEL", "debug")
	t.Setenv("AREATRACKER_DATA_DIR", "/from/env")
	t.Setenv("AREATRACKER_NOTICE_SECONDS", "2.5")

	s, err := LoadSettings(newFlags(t, "--data-dir", "/from/flag", "--show-fps"))
	if err != nil {
		t.Fatal(err)
	}
	if s.DataDir != "/from/flag" {
		t.Errorf("DataDir = %q, flag should win over env", s.DataDir)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env value", s.LogLevel)
	}
	if s.NoticeSeconds != 2.5 {
		t.Errorf("NoticeSeconds = %v", s.NoticeSeconds)
	}
	if !s.ShowFPS {
		t.Error("ShowFPS flag not applied")
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "areatracker.yaml")
	if err := os.WriteFile(path, []byte("debug: true\nscript: replay.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(newFlags(t, "--config", path))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Debug || s.Script != "replay.json" {
		t.Errorf("settings file not applied: %+v", s)
	}

	if _, err := LoadSettings(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Error("expected an error for a missing settings file")
	}
}
