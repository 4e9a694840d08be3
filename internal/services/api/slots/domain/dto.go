// Package domain holds DTOs for slot search http and service contracts
package domain

// Times on the wire are RFC3339 instants; the timezone field only decides
// calendar days, the alignment grid and how results are rendered

// TimeRange is the requested search window, start inclusive and end exclusive
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-12-01T00:00:00-05:00"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-12-08T00:00:00-05:00"`
}

// AvailabilityInput is one weekly recurring rule
type AvailabilityInput struct {
	DaysOfWeek     []string `json:"days_of_week"    validate:"required,min=1,max=7,dive,weekday" example:"mon,wed"`
	AvailableTimes []string `json:"available_times" validate:"required,min=1,max=96,dive,timeofday" example:"09:30:00"`
	Duration       int      `json:"duration"        validate:"required,min=1,max=10080" example:"180"`
}

// ParametersInput is the scheduling contract for one search
type ParametersInput struct {
	Availability      []AvailabilityInput `json:"availability"       validate:"omitempty,max=64,dive"`
	Duration          int                 `json:"duration"           validate:"required,min=1,max=1440" example:"30"`
	BufferBefore      int                 `json:"buffer_before"      validate:"min=0,max=1440" example:"10"`
	BufferAfter       int                 `json:"buffer_after"       validate:"min=0,max=1440" example:"5"`
	AlignmentInterval int                 `json:"alignment_interval" validate:"required,min=1,max=60" example:"15"`
	AlignmentOffset   int                 `json:"alignment_offset"   validate:"min=-1440,max=1440" example:"0"`
}

// BookingInput is a pre-existing booking; unknown statuses are ignored
type BookingInput struct {
	Start  string `json:"start"  validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-12-01T10:00:00-05:00"`
	End    string `json:"end"    validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-12-01T10:30:00-05:00"`
	Status string `json:"status" validate:"required,max=64" example:"busy"`
}

// SearchInput asks for open slots inside Range
type SearchInput struct {
	Timezone   string          `json:"timezone,omitempty" validate:"omitempty,timezone" example:"America/New_York"`
	Range      TimeRange       `json:"range"`
	Parameters ParametersInput `json:"parameters"`
	Bookings   []BookingInput  `json:"bookings,omitempty" validate:"omitempty,dive"`
	Limit      int             `json:"limit,omitempty"    validate:"omitempty,min=1" example:"100"`
	After      string          `json:"after,omitempty"    validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2025-12-01T10:00:00-05:00"` //nolint:lll
}

// SlotRow is one open slot with buffers already removed
type SlotRow struct {
	ID    string `json:"id"    example:"3b1f0c2e-5d6a-5b7c-9e8f-0a1b2c3d4e5f"`
	Start string `json:"start" example:"2025-12-01T09:30:00-05:00"`
	End   string `json:"end"   example:"2025-12-01T10:00:00-05:00"`
}

// PageInfo describes the returned window over all matching slots
type PageInfo struct {
	Total    int    `json:"total"              example:"42"`
	PageSize int    `json:"page_size"          example:"100"`
	Cursor   string `json:"cursor,omitempty"   example:"2025-12-01T15:30:00-05:00"`
}

// SearchOutput is the search result
type SearchOutput struct {
	Timezone string    `json:"timezone" example:"America/New_York"`
	Items    []SlotRow `json:"items"`
	Page     PageInfo  `json:"page"`
}

// Limits are the guard rails applied to every search
type Limits struct {
	MaxRangeDays    int    `json:"max_range_days"    example:"62"`
	MaxBookings     int    `json:"max_bookings"      example:"5000"`
	MaxPageSize     int    `json:"max_page_size"     example:"500"`
	DefaultPageSize int    `json:"default_page_size" example:"100"`
	DefaultTimezone string `json:"default_timezone"  example:"UTC"`
}
