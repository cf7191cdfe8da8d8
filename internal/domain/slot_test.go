package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot_Bookable(t *testing.T) {
	end := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		available bool
		now       time.Time
		want      bool
	}{
		{
			name:      "available well before end",
			available: true,
			now:       end.Add(-31 * time.Minute),
			want:      true,
		},
		{
			name:      "available one second before end",
			available: true,
			now:       end.Add(-time.Second),
			want:      true,
		},
		{
			name:      "end time reached exactly",
			available: true,
			now:       end,
			want:      false,
		},
		{
			name:      "end time passed",
			available: true,
			now:       end.Add(time.Second),
			want:      false,
		},
		{
			name:      "flag down before end",
			available: false,
			now:       end.Add(-time.Hour),
			want:      false,
		},
		{
			name:      "flag down and expired",
			available: false,
			now:       end.Add(time.Hour),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Slot{
				ResourceType: ResourceCall,
				StartTime:    end.Add(-30 * time.Minute),
				EndTime:      end,
				Available:    tt.available,
			}
			assert.Equal(t, tt.want, s.Bookable(tt.now))
		})
	}
}

// Once expired, a slot stays expired for every later instant.
func TestSlot_Bookable_Monotonic(t *testing.T) {
	end := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	s := &Slot{Available: true, StartTime: end.Add(-30 * time.Minute), EndTime: end}

	now := end
	for i := 0; i < 10; i++ {
		assert.False(t, s.Bookable(now))
		now = now.Add(time.Duration(i+1) * time.Minute)
	}
}
