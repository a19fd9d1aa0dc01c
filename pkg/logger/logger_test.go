package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"WARN", WarnLevel},
		{"trace", TraceLevel},
		{"", InfoLevel},
		{"loud", InfoLevel},
	}
	for _, test := range tests {
		if got := ParseLevel(test.in); got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestExtend(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf)
	child := log.Extend(log.With().Str("m", "noop"))
	child.Warn().Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("%v: %q", err, buf.String())
	}
	if line["m"] != "noop" || line["message"] != "hello" || line["level"] != "warn" {
		t.Errorf("got %v", line)
	}
}
