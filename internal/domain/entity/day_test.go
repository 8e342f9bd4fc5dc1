package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 3, 14, 13, 45, 12, 0, time.UTC)

	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 999000000, time.UTC), end)
}

func TestSameUTCDay(t *testing.T) {
	taipei := time.FixedZone("CST", 8*60*60)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day",
			a:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days across midnight",
			a:    time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
			b:    time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC),
			want: false,
		},
		{
			name: "local time normalized to UTC",
			a:    time.Date(2026, 3, 15, 7, 0, 0, 0, taipei),
			b:    time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameUTCDay(tt.a, tt.b))
		})
	}
}
