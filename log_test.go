package areatracker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("loud", ""); err == nil {
		t.Error("expected an error for an unknown level")
	}

	path := filepath.Join(t.TempDir(), "areatracker.log")
	l, err := NewLogger("warn", path)
	if err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v", l.GetLevel())
	}
	l.Warn("region file skipped")
	l.Info("not written")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "region file skipped") {
		t.Errorf("log file = %q", data)
	}
	if strings.Contains(string(data), "not written") {
		t.Error("info entry written at warn level")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	custom := logrus.New()
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("SetLogger did not install the logger")
	}
	SetLogger(nil)
	if Logger() == custom || Logger() == nil {
		t.Error("SetLogger(nil) should restore a fresh default logger")
	}
}
