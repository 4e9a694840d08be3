// Package httpkit is the routing surface modules program against
// so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "slotfinder/internal/platform/net/http"
)

// Router re-exports the platform router seam
type Router = phttp.Router

// Get mounts a body-less handler whose result goes out in the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.Func(h))
}

// PostJSON mounts a handler fed the decoded and validated body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// MountAPIV1 scopes mount under /api/v1 behind mw
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/v1", func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}
