package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWholeDaysFloorsTowardsNegativeInfinity(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want int
	}{
		{"exact", 72 * time.Hour, 3},
		{"partial", 3*24*time.Hour + 20*time.Hour, 3},
		{"zero", 0, 0},
		{"early by hours", -2 * time.Hour, -1},
		{"early by a day and a half", -36 * time.Hour, -2},
		{"early by exactly two days", -48 * time.Hour, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wholeDays(tt.in))
		})
	}
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.0, safeRatio(3, 0))
	assert.Equal(t, 0.5, safeRatio(1, 2))
}
