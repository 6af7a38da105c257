package areatracker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugModeLogsPresentAndClicks(t *testing.T) {
	s := newScenarioSession(t)
	buf := captureLog(t)
	s.SetDebugMode(true)

	s.clickAt(area1Point)
	out := buf.String()
	if !strings.Contains(out, "msg=present") {
		t.Errorf("no present timing logged:\n%s", out)
	}
	if !strings.Contains(out, "click: state") {
		t.Errorf("no state dump logged:\n%s", out)
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	s := newScenarioSession(t)
	buf := captureLog(t)

	s.clickAt(area1Point)
	if buf.Len() != 0 {
		t.Errorf("unexpected output with debug off:\n%s", buf.String())
	}
}
