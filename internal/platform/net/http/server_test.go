package http_test

import (
	"context"
	"testing"
	"time"

	"slotfinder/internal/platform/config"
	phttp "slotfinder/internal/platform/net/http"
)

func TestNewServer_ReadsConfig(t *testing.T) {
	t.Setenv("SLOTFINDER_API_PORT", ":12345")

	srv := phttp.NewServer(config.New().Prefix("SLOTFINDER_"))
	if srv.Addr() != ":12345" {
		t.Fatalf("addr = %q", srv.Addr())
	}
	if phttp.NewServer(config.New().Prefix("UNSET_")).Addr() != ":4000" {
		t.Fatal("default addr should be :4000")
	}
}

func TestServer_RunDrainsOnCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	t.Setenv("SHUTDOWN_GRACE", "1s")
	srv := phttp.NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:abc")

	if err := phttp.NewServer(config.New()).Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
