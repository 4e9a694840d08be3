// Package net carries request correlation ids on a context
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ClientHeader is the header a caller uses to identify itself in our logs
const ClientHeader = "X-Client-ID"

type clientKey struct{}

// WithRequest stores the request id where chi's RequestID middleware keeps it and the client id beside it
// empty values are not stored
func WithRequest(ctx context.Context, reqID, clientID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if clientID != "" {
		ctx = context.WithValue(ctx, clientKey{}, clientID)
	}
	return ctx
}

// RequestID returns the request id or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// ClientID returns the client id or ""
func ClientID(ctx context.Context) string {
	id, _ := ctx.Value(clientKey{}).(string)
	return id
}
