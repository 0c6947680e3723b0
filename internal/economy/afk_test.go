package economy

import (
	"testing"
	"time"
)

func TestAFKEarnings(t *testing.T) {
	cases := []struct {
		name       string
		elapsed    time.Duration
		multiplier float64
		want       float64
	}{
		{"one hour base multiplier", time.Hour, 1.0, 10.0},
		{"half hour", 30 * time.Minute, 1.0, 5.0},
		{"one hour with multiplier", time.Hour, 1.15, 11.5},
		{"two days, no cap", 48 * time.Hour, 1.0, 480.0},
		{"zero elapsed", 0, 2.0, 0.0},
	}

	for _, tc := range cases {
		if got := AFKEarnings(tc.elapsed, tc.multiplier); !almostEqual(got, tc.want) {
			t.Fatalf("%s: earnings = %v; want %v", tc.name, got, tc.want)
		}
	}
}
