// Package http holds the router seam, the response envelope and the server lifecycle
package http

import (
	"net/http"

	perr "slotfinder/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))
	Mux() http.Handler
}

type chiRouter struct{ r chi.Router }

// AdaptChi wraps m as a Router; unknown routes and methods answer with the JSON envelope
func AdaptChi(m *chi.Mux) Router {
	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, perr.Newf(perr.ErrorCodeNotFound, "no route for %s", r.URL.Path))
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, perr.Newf(perr.ErrorCodeMethodNotAllowed, "%s not allowed on %s", r.Method, r.URL.Path))
	})
	return chiRouter{r: m}
}

func (c chiRouter) Get(p string, h Handler)  { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler) { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }
func (c chiRouter) Mux() http.Handler                         { return c.r }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}
