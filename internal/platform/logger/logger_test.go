package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	pnet "slotfinder/internal/platform/net"
	kit "slotfinder/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestLevelOf(t *testing.T) {
	t.Parallel()

	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.DebugLevel,
		"loud":    zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := levelOf(in); got != want {
			t.Fatalf("levelOf(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Service: "slotfinder-api", Writer: &buf})
	l.Debug().Msg("hidden")
	l.Info().Int("slots", 5).Msg("slot search")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected exactly one json line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "slotfinder-api" || line["message"] != "slot search" || line["slots"] != float64(5) {
		t.Fatalf("unexpected line %v", line)
	}
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Options{Format: "console", Writer: &buf})
	l.Info().Str("timezone", "Europe/Stockholm").Msg("resolved")

	kit.MustContain(t, buf.String(), "resolved")
	kit.MustContain(t, buf.String(), "Europe/Stockholm")
}

func TestC_RequestFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Format: "json", Writer: &buf})

	ctx := pnet.WithRequest(context.Background(), "req-42", "calendar-web")
	C(ctx).Info().Msg("with ids")
	Named("slots").Info().Msg("named")
	C(context.Background()).Info().Msg("bare")

	// another test may have initialized the root first, so only check when ours won
	if buf.Len() == 0 {
		t.Skip("root logger initialized elsewhere")
	}
	out := buf.String()
	kit.MustContain(t, out, `"request_id":"req-42"`)
	kit.MustContain(t, out, `"client_id":"calendar-web"`)
	kit.MustContain(t, out, `"component":"slots"`)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "slotfinder-eval")
	t.Setenv("LOG_CALLER", "true")

	got := FromEnv()
	want := Options{Level: "warn", Format: "json", Service: "slotfinder-eval", WithCaller: true}
	if got != want {
		t.Fatalf("FromEnv = %+v, want %+v", got, want)
	}
}
