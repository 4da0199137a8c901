// log/log_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	lg := NewTest(&buf, "warn")

	lg.Debug("debug message")
	lg.Infof("info %d", 1)
	lg.Warnf("warn %d", 2)
	lg.Error("error message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info 1") {
		t.Errorf("messages below the level were logged: %q", out)
	}
	for _, s := range []string{"warn 2", "error message", "key=value"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in %q", s, out)
		}
	}
}

func TestCallstack(t *testing.T) {
	var buf bytes.Buffer
	lg := NewTest(&buf, "debug")
	lg.Info("hello")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected the caller in the callstack: %q", buf.String())
	}

	fr := Callstack(nil)
	if len(fr) == 0 {
		t.Fatalf("empty callstack")
	}
	if s := fr[0].String(); !strings.HasPrefix(s, "testing.go:") && !strings.Contains(s, "log_test.go") {
		t.Errorf("unexpected first frame %q", s)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	lg := NewTest(&buf, "info").With("callsign", "BAW123")
	lg.Info("hello")
	if !strings.Contains(buf.String(), "callsign=BAW123") {
		t.Errorf("expected the With attributes to be logged: %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger
	lg.Debug("ignored")
	lg.Infof("ignored %d", 1)
	if lg.With("a", 1) != nil {
		t.Errorf("With on a nil logger should return nil")
	}
}
