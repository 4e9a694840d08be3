package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	perr "slotfinder/internal/platform/errors"
	"slotfinder/internal/platform/logger"
	pnet "slotfinder/internal/platform/net"
	phttp "slotfinder/internal/platform/net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// maxClientID bounds the caller supplied id copied into logs
const maxClientID = 128

// RequestContext copies the request id and X-Client-ID into the context read by
// logger.C and the response envelope; it must run after RequestID
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := r.Header.Get(pnet.ClientHeader)
			if len(client) > maxClientID {
				client = client[:maxClientID]
			}
			ctx := pnet.WithRequest(r.Context(), pnet.RequestID(r.Context()), client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Recover turns a panic into a 500 envelope and logs the stack with the request id
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			// let net/http abort the connection as it would without us
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Str("panic", fmt.Sprint(v)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.New(perr.ErrorCodePanic, "panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}

// AccessLog writes one line per request through the request logger
// requests slower than slow log at warn; slow <= 0 disables that
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			log := logger.C(r.Context())
			evt := log.Info()
			if slow > 0 && elapsed >= slow {
				evt = log.Warn()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}
