package service

import (
	"time"

	"github.com/google/uuid"

	"slotfinder/internal/core/interval"
	"slotfinder/internal/services/api/slots/domain"
)

// slotNamespace seeds the name based slot ids
var slotNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:slotfinder:slot"))

// SlotID is stable for the same zone and instants so clients can dedupe across pages
func SlotID(zone string, slot interval.Interval) string {
	name := zone + "|" + slot.Start.UTC().Format(time.RFC3339) + "|" + slot.End.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(slotNamespace, []byte(name)).String()
}

// paginate returns the page after cursor (exclusive) plus the cursor for the next one
func paginate(slots []interval.Interval, after time.Time, limit int) (page []interval.Interval, next time.Time, more bool) {
	i := 0
	if !after.IsZero() {
		for i < len(slots) && !slots[i].Start.After(after) {
			i++
		}
	}
	end := min(i+limit, len(slots))
	page = slots[i:end]
	if end < len(slots) && len(page) > 0 {
		return page, page[len(page)-1].Start, true
	}
	return page, time.Time{}, false
}

func toRows(zone string, loc *time.Location, slots []interval.Interval) []domain.SlotRow {
	rows := make([]domain.SlotRow, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, domain.SlotRow{
			ID:    SlotID(zone, s),
			Start: s.Start.In(loc).Format(time.RFC3339),
			End:   s.End.In(loc).Format(time.RFC3339),
		})
	}
	return rows
}
