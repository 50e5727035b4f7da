package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("fenixctl", &buf)
	l.Error().Stack().Err(errors.New("boom")).Msg("failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["service"] != "fenixctl" || entry["message"] != "failed" || entry["error"] != "boom" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["stack"]; !ok {
		t.Fatalf("expected stack on error event: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp: %v", entry)
	}
}

func TestLevel(t *testing.T) {
	if Level("warn", false) != zerolog.WarnLevel {
		t.Fatal("warn not parsed")
	}
	if Level("warn", true) != zerolog.DebugLevel {
		t.Fatal("debug flag must win")
	}
	if Level("", false) != zerolog.InfoLevel || Level("nope", false) != zerolog.InfoLevel {
		t.Fatal("fallback must be info")
	}
}
