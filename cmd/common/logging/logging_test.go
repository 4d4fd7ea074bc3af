package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message leaked at default level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNew_ParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, " DEBUG ")
	log.Debug().Str("unit", ".-").Msg("lookup")

	if !strings.Contains(buf.String(), "lookup") || !strings.Contains(buf.String(), "unit=.-") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}

func TestNew_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud")
	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected warn level for unknown input, got %q", buf.String())
	}
}

func TestL_IsShared(t *testing.T) {
	if L() != L() {
		t.Errorf("L() should return the same logger")
	}
}
