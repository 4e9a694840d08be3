// Package module mounts the meta endpoints and assembles their readiness checks
package module

import (
	"context"
	"errors"

	"slotfinder/internal/core/version"
	"slotfinder/internal/modkit"
	"slotfinder/internal/modkit/httpkit"
	ptime "slotfinder/internal/platform/time"
	slotsdomain "slotfinder/internal/services/api/slots/domain"

	metahttp "slotfinder/internal/services/api/meta/http"
)

// Ports are what meta consumes from other modules; a missing Slots skips that check
type Ports struct {
	Slots slotsdomain.ServicePort
}

// Module serves /meta
type Module struct {
	spec modkit.Spec
	deps metahttp.Deps
}

// New builds the meta module; pass the slots port with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	spec := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	ports, _ := spec.Ports.(Ports)
	slots := metahttp.Check{Name: "slots"}
	if ports.Slots != nil {
		slots.Run = canary{port: ports.Slots}
	}

	now := deps.Clock()
	return &Module{spec: spec, deps: metahttp.Deps{
		ServiceName: version.Service(),
		StartedAt:   now(),
		Now:         now,
		Checks: []metahttp.Check{
			{Name: "tzdata", Run: metahttp.CheckFunc(zonesLoad)},
			slots,
		},
	}}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.spec.Name }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.spec.Mount(r, func(sr httpkit.Router) { metahttp.Register(sr, m.deps) })
}

// Ports implements modkit.Module; meta exports nothing
func (m *Module) Ports() any { return nil }

// zonesLoad fails when the embedded zone database is unusable
func zonesLoad(context.Context) error {
	for _, z := range []string{"America/New_York", "Europe/Stockholm", "Asia/Kolkata"} {
		if _, err := ptime.LoadLocation(z, ""); err != nil {
			return err
		}
	}
	return nil
}

// canary runs a fixed search whose answer is known: two half hour slots
type canary struct{ port slotsdomain.ServicePort }

func (c canary) Check(ctx context.Context) error {
	out, err := c.port.Search(ctx, slotsdomain.SearchInput{
		Timezone: "UTC",
		Range:    slotsdomain.TimeRange{Start: "2025-12-01T00:00:00Z", End: "2025-12-02T00:00:00Z"},
		Parameters: slotsdomain.ParametersInput{
			Availability: []slotsdomain.AvailabilityInput{{
				DaysOfWeek:     []string{"mon"},
				AvailableTimes: []string{"09:00:00"},
				Duration:       60,
			}},
			Duration:          30,
			AlignmentInterval: 30,
		},
	})
	if err != nil {
		return err
	}
	if out.Page.Total != 2 {
		return errors.New("canary search returned unexpected slots")
	}
	return nil
}
