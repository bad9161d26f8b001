package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/format"
)

func TestRelativeFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		locales []string
		opts    format.Options
		offset  time.Duration
		want    string
	}{
		{"now", []string{"en"}, nil, 0, "now"},
		{"seconds ago", []string{"en"}, nil, -10 * time.Second, "10 seconds ago"},
		{"hours ago", []string{"en"}, nil, -3 * time.Hour, "3 hours ago"},
		{"one hour", []string{"en"}, nil, time.Hour, "in 1 hour"},
		{"days ahead", []string{"en"}, nil, 48 * time.Hour, "in 2 days"},
		{"yesterday", []string{"en"}, nil, -24 * time.Hour, "yesterday"},
		{"tomorrow es", []string{"es"}, nil, 24 * time.Hour, "mañana"},
		{"numeric style", []string{"en"}, format.Options{"style": "numeric"}, -24 * time.Hour, "1 day ago"},
		{"numeric zero", []string{"en"}, format.Options{"style": "numeric"}, 0, "in 0 seconds"},
		{"months", []string{"en"}, nil, -60 * 24 * time.Hour, "2 months ago"},
		{"years", []string{"en"}, nil, 400 * 24 * time.Hour, "in 1 year"},
		{"es future", []string{"es"}, nil, 72 * time.Hour, "dentro de 3 días"},
		{"es past", []string{"es"}, nil, -time.Hour, "hace 1 hora"},
		{"de past", []string{"de"}, nil, -72 * time.Hour, "vor 3 Tagen"},
		{"fr past", []string{"fr"}, nil, -5 * time.Minute, "il y a 5 minutes"},
		{"fixed unit", []string{"en"}, format.Options{"units": "minute"}, -2 * time.Hour, "120 minutes ago"},
		{"short unit", []string{"en"}, format.Options{"units": "hour-short"}, -3 * time.Hour, "3 hr. ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := format.NewRelativeFormat(tt.locales, tt.opts)
			require.NoError(t, err)
			require.Equal(t, tt.want, f.Format(now.Add(tt.offset), now))
		})
	}
}

func TestRelativeFormat_SameInstanceDifferentNow(t *testing.T) {
	t.Parallel()

	f, err := format.NewRelativeFormat([]string{"en"}, nil)
	require.NoError(t, err)

	then := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "2 hours ago", f.Format(then, then.Add(2*time.Hour)))
	require.Equal(t, "5 hours ago", f.Format(then, then.Add(5*time.Hour)))
}

func TestRelativeFormat_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := format.NewRelativeFormat([]string{"en"}, format.Options{"units": "fortnight"})
	require.ErrorIs(t, err, format.ErrInvalidOption)

	_, err = format.NewRelativeFormat([]string{"en"}, format.Options{"style": "narrow"})
	require.ErrorIs(t, err, format.ErrInvalidOption)
}
