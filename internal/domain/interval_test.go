package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		duration  int
		busyStart int
		busyEnd   int
		want      bool
	}{
		{"fully inside busy", 600, 30, 570, 660, true},
		{"busy inside slot", 540, 60, 555, 570, true},
		{"partial overlap at start", 555, 30, 540, 570, true},
		{"partial overlap at end", 540, 45, 570, 600, true},
		{"identical", 540, 30, 540, 570, true},
		{"slot ends where busy starts", 540, 30, 570, 600, false},
		{"slot starts where busy ends", 600, 30, 570, 600, false},
		{"disjoint before", 480, 30, 600, 660, false},
		{"disjoint after", 720, 30, 600, 660, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.start, tt.duration, tt.busyStart, tt.busyEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapsPeriod(t *testing.T) {
	slot := types.TimeString("10:00")

	assert.True(t, OverlapsPeriod(slot, 30, types.TimeString("10:15"), types.TimeString("11:00")))
	assert.False(t, OverlapsPeriod(slot, 30, types.TimeString("10:30"), types.TimeString("11:00")))
	assert.False(t, OverlapsPeriod(slot, 30, types.TimeString("09:00"), types.TimeString("10:00")))

	// Malformed values never block a slot.
	assert.False(t, OverlapsPeriod(types.TimeString("bad"), 30, types.TimeString("00:00"), types.TimeString("24:00")))
	assert.False(t, OverlapsPeriod(slot, 30, types.TimeString("bad"), types.TimeString("11:00")))
}
