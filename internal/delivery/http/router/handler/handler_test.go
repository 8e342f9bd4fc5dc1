package handler

import (
	"testing"
	"time"

	domainerrors "caltrack/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "calendar date",
			raw:  "2026-03-14",
			want: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 timestamp is accepted",
			raw:  "2026-03-14T18:30:00+08:00",
			want: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "garbage",
			raw:     "14/03/2026",
			wantErr: true,
		},
		{
			name:    "unix seconds are rejected",
			raw:     "1770000000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidDate) || errors.As(err, new(domainerrors.AppError)))

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}
