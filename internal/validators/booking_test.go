package validators

import (
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/clock"
)

func TestValidateBooking_AccumulatesAllViolations(t *testing.T) {
	res := ValidateBooking(BookingInput{ProviderID: nil, Date: nil})

	if res.OK() {
		t.Fatalf("expected violations")
	}
	if len(res.Violations) != 2 {
		t.Fatalf("violations = %d, want 2 (%+v)", len(res.Violations), res.Violations)
	}

	fields := map[string]bool{}
	for _, v := range res.Violations {
		fields[v.Field] = true
	}
	if !fields["provider_id"] || !fields["date"] {
		t.Fatalf("missing fields in %+v", res.Violations)
	}
}

func TestValidateBooking_ProviderID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		ok   bool
		want uint
	}{
		{"json number", float64(9), true, 9},
		{"int", 9, true, 9},
		{"fractional", 9.5, false, 0},
		{"zero", float64(0), false, 0},
		{"negative", float64(-1), false, 0},
		{"string", "9", false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateBooking(BookingInput{ProviderID: tc.in, Date: "2024-03-01T14:00:00"})
			if res.OK() != tc.ok {
				t.Fatalf("OK = %v, want %v (%+v)", res.OK(), tc.ok, res.Violations)
			}
			if tc.ok && res.Draft.ProviderID != tc.want {
				t.Fatalf("provider id = %d, want %d", res.Draft.ProviderID, tc.want)
			}
		})
	}
}

func TestValidateBooking_DateFormats(t *testing.T) {
	loc := clock.Location("")

	res := ValidateBooking(BookingInput{ProviderID: float64(9), Date: "2024-03-01T14:37:00"})
	if !res.OK() {
		t.Fatalf("violations: %+v", res.Violations)
	}
	want := time.Date(2024, 3, 1, 14, 37, 0, 0, loc)
	if !res.Draft.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", res.Draft.Date, want)
	}

	res = ValidateBooking(BookingInput{ProviderID: float64(9), Date: "2024-03-01T14:37:00-03:00"})
	if !res.OK() {
		t.Fatalf("RFC3339 should parse: %+v", res.Violations)
	}

	res = ValidateBooking(BookingInput{ProviderID: float64(9), Date: "01/03/2024"})
	if res.OK() {
		t.Fatalf("expected invalid_format")
	}
}

func TestBookingResult_Err(t *testing.T) {
	res := ValidateBooking(BookingInput{ProviderID: float64(9), Date: "2024-03-01T14:00:00"})
	if err := res.Err(); err != nil {
		t.Fatalf("Err = %v, want nil", err)
	}

	res = ValidateBooking(BookingInput{ProviderID: nil, Date: "x"})
	err := res.Err()

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err type = %T, want *ValidationError", err)
	}
	if len(vErr.Violations) != len(res.Violations) {
		t.Fatalf("violations mismatch")
	}
}
