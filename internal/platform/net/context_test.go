package net_test

import (
	"context"
	"testing"

	pnet "slotfinder/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, req, client string
	}{
		{"both", "req-7", "calendar-web"},
		{"request only", "req-8", ""},
		{"client only", "", "booking-widget"},
		{"neither", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := pnet.WithRequest(context.Background(), c.req, c.client)
			if got := pnet.RequestID(ctx); got != c.req {
				t.Fatalf("RequestID = %q, want %q", got, c.req)
			}
			if got := pnet.ClientID(ctx); got != c.client {
				t.Fatalf("ClientID = %q, want %q", got, c.client)
			}
		})
	}
}

func TestWithRequest_KeepsEarlierClient(t *testing.T) {
	t.Parallel()

	ctx := pnet.WithRequest(context.Background(), "", "first")
	ctx = pnet.WithRequest(ctx, "req-9", "")
	if pnet.ClientID(ctx) != "first" || pnet.RequestID(ctx) != "req-9" {
		t.Fatalf("got request %q client %q", pnet.RequestID(ctx), pnet.ClientID(ctx))
	}
}
