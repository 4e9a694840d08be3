package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "slotfinder/internal/platform/errors"
)

type searchBody struct {
	Duration int    `json:"duration_minutes" validate:"required,min=1,max=1440"`
	Timezone string `json:"timezone" validate:"required"`
	Note     string `json:"-" validate:"max=3"`
	Limit    int    `validate:"max=100"`
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		method string
		body   string
		code   perr.ErrorCode
		field  string
		ok     bool
	}{
		{name: "valid", method: http.MethodPost, body: `{"duration_minutes":30,"timezone":"UTC"}`, ok: true},
		{name: "empty post", method: http.MethodPost, body: ``, code: perr.ErrorCodeJSON},
		{name: "empty get", method: http.MethodGet, body: ``, ok: true},
		{name: "broken", method: http.MethodPost, body: `{"duration_minutes":`, code: perr.ErrorCodeJSON},
		{name: "unknown field", method: http.MethodPost, body: `{"duration_minutes":30,"timezone":"UTC","x":1}`, code: perr.ErrorCodeJSON},
		{name: "trailing", method: http.MethodPost, body: `{"duration_minutes":30,"timezone":"UTC"} {}`, code: perr.ErrorCodeJSON},
		{name: "too long", method: http.MethodPost, body: `{"duration_minutes":2000,"timezone":"UTC"}`, code: perr.ErrorCodeValidation, field: "duration_minutes"},
		{name: "missing tz", method: http.MethodPost, body: `{"duration_minutes":30}`, code: perr.ErrorCodeValidation, field: "timezone"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(c.method, "/slots/search", strings.NewReader(c.body))
			got, err := ParseJSON[searchBody](req)
			if c.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if c.body != "" && (got.Duration != 30 || got.Timezone != "UTC") {
					t.Fatalf("decoded %+v", got)
				}
				return
			}
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %d, want %d (%v)", perr.CodeOf(err), c.code, err)
			}
			if e, _ := perr.As(err); e.Field() != c.field {
				t.Fatalf("field = %q, want %q", e.Field(), c.field)
			}
		})
	}
}

func TestParseJSON_BodyCap(t *testing.T) {
	t.Parallel()

	body := `{"duration_minutes":30,"timezone":"` + strings.Repeat("a", MaxBody) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if _, err := ParseJSON[searchBody](req); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestValidate_FieldNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    searchBody
		field string
		msg   string
	}{
		{searchBody{Duration: 30, Timezone: "UTC", Note: "long"}, "Note", "Note must be at most 3"},
		{searchBody{Duration: 30, Timezone: "UTC", Limit: 101}, "Limit", "Limit must be at most 100"},
		{searchBody{Duration: 0, Timezone: "UTC"}, "duration_minutes", "duration_minutes is a required field"},
	}
	for _, c := range cases {
		field, msg := ValidationFieldAndMessage(Get().Validator.Struct(c.in))
		if field != c.field || msg != c.msg {
			t.Fatalf("got (%q, %q), want (%q, %q)", field, msg, c.field, c.msg)
		}
	}

	if err := Validate(42); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("non struct should fail validation, got %v", err)
	}
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil = (%q, %q)", f, m)
	}
	if f, m := ValidationFieldAndMessage(perr.JSONErrf("boom")); f != "" || m != "boom" {
		t.Fatalf("foreign = (%q, %q)", f, m)
	}
}

func TestRegisterTag(t *testing.T) {
	type window struct {
		Unit string `json:"unit" validate:"unitname"`
	}
	err := RegisterTag("unitname", func(fl FieldLevel) bool {
		return fl.Field().String() == "minutes"
	}, "{0} must name a supported unit")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := Validate(window{Unit: "minutes"}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	err = Validate(window{Unit: "hours"})
	if e, ok := perr.As(err); !ok || e.Field() != "unit" || err.Error() != "unit must name a supported unit" {
		t.Fatalf("got %v", err)
	}
}
