package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := date(t, "2025-06-10")

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-06-10"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"06/10/2025"`), &d))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	assert.NoError(t, d.Scan(time.Date(2025, 6, 10, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2025-06-10", d.String())

	assert.NoError(t, d.Scan([]byte("2025-06-11")))
	assert.Equal(t, "2025-06-11", d.String())

	assert.NoError(t, d.Scan("2025-06-12"))
	assert.Equal(t, "2025-06-12", d.String())

	assert.Error(t, d.Scan(42))
}

func TestBooking_Overlaps(t *testing.T) {
	// Existing booking occupies [2025-06-10, 2025-06-15).
	booking := &Booking{
		StartDate: date(t, "2025-06-10"),
		EndDate:   date(t, "2025-06-15"),
	}

	tests := []struct {
		name     string
		start    string
		end      string
		overlaps bool
	}{
		{"identical range", "2025-06-10", "2025-06-15", true},
		{"contained within", "2025-06-11", "2025-06-13", true},
		{"enclosing", "2025-06-08", "2025-06-20", true},
		{"overlapping the start", "2025-06-08", "2025-06-11", true},
		{"overlapping the end", "2025-06-14", "2025-06-18", true},
		{"ending at the start boundary", "2025-06-05", "2025-06-10", false},
		{"starting at the end boundary", "2025-06-15", "2025-06-20", false},
		{"entirely before", "2025-06-01", "2025-06-05", false},
		{"entirely after", "2025-06-20", "2025-06-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, booking.Overlaps(date(t, tt.start), date(t, tt.end)))
		})
	}
}

func TestBooking_Started(t *testing.T) {
	booking := &Booking{
		StartDate: date(t, "2025-06-10"),
		EndDate:   date(t, "2025-06-15"),
	}

	assert.False(t, booking.Started(date(t, "2025-06-09")))
	assert.True(t, booking.Started(date(t, "2025-06-10")))
	assert.True(t, booking.Started(date(t, "2025-06-20")))
}

func TestDate_AddDays(t *testing.T) {
	d := date(t, "2025-06-28")
	assert.Equal(t, "2025-07-01", d.AddDays(3).String())
}
