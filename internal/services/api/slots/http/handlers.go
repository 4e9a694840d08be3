// Package http provides http transport for slot search
package http

import (
	stdhttp "net/http"

	"slotfinder/internal/modkit/httpkit"
	"slotfinder/internal/services/api/slots/domain"
	svc "slotfinder/internal/services/api/slots/service"
)

// Register mounts slot endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// open slots for an inline schedule and booking list
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)

	// guard rails applied to every search
	httpkit.Get(r, "/limits", h.limits)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /slots/search Slots slotsSearch
// @Summary Find open appointment slots
// @Tags Slots
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Search"
// @Success 200 {object} domain.SearchOutput "ok"
// @Failure 400 {object} errors.Wire "malformed or invalid payload"
// @Failure 422 {object} errors.Wire "unsatisfiable search"
// @Router /slots/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route GET /slots/limits Slots slotsLimits
// @Summary Search guard rails
// @Tags Slots
// @Produce json
// @Success 200 {object} domain.Limits "ok"
// @Router /slots/limits [get]
func (h *handlers) limits(_ *stdhttp.Request) (any, error) {
	return h.svc.Limits(), nil
}
