package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetZeroLogger(t *testing.T) {
	t.Setenv("COLORIZE_LOG", "false")
	var buf bytes.Buffer
	logger := GetZeroLogger("session::test", &buf)
	logger.Info().Str(SessionIDKey, "abc").Msg("Hand recorded")

	out := buf.String()
	for _, want := range []string{"Hand recorded", "sessionID=abc", "logger_name=session::test"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestIsColorLoggingEnabled(t *testing.T) {
	for v, expected := range map[string]bool{"": true, "1": true, "TRUE": true, "false": false, "0": false} {
		t.Setenv("COLORIZE_LOG", v)
		if IsColorLoggingEnabled() != expected {
			t.Errorf("COLORIZE_LOG=%q: expected %v", v, expected)
		}
	}
}
