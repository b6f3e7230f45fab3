package scheduler

import (
	"testing"
	"time"
)

func TestNextRunAfter(t *testing.T) {
	base := time.Date(2025, 6, 10, 1, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "later today",
			now:  base,
			hour: 2,
			want: time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  base,
			hour: 1,
			want: time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly on the hour rolls forward",
			now:  time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC),
			hour: 2,
			want: time.Date(2025, 6, 11, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "invalid hour falls back to midnight",
			now:  base,
			hour: 99,
			want: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRunAfter(tt.now, tt.hour)
			if !got.Equal(tt.want) {
				t.Errorf("nextRunAfter(%v, %d) = %v, want %v", tt.now, tt.hour, got, tt.want)
			}
		})
	}
}
