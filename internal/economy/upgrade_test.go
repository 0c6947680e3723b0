package economy

import "testing"

func TestUpgradeCost(t *testing.T) {
	cases := []struct {
		baseCost float64
		level    int
		want     float64
	}{
		{100, 0, 100},
		{100, 1, 150},
		{100, 2, 225},
		{500, 3, 1687.5},
	}

	for _, tc := range cases {
		if got := UpgradeCost(tc.baseCost, tc.level); !almostEqual(got, tc.want) {
			t.Fatalf("UpgradeCost(%v, %d) = %v; want %v", tc.baseCost, tc.level, got, tc.want)
		}
	}
}

func TestRates_ScaleTapReward(t *testing.T) {
	r := NewRates()
	if got := r.TapReward(); !almostEqual(got, 0.01) {
		t.Fatalf("initial tap reward = %v; want 0.01", got)
	}

	// покупка улучшения тапа дважды — рост мультипликативный
	r.ScaleTapReward(EffectFactor(0.1))
	r.ScaleTapReward(EffectFactor(0.1))
	if got := r.TapReward(); !almostEqual(got, 0.01*1.1*1.1) {
		t.Fatalf("scaled tap reward = %v; want %v", got, 0.01*1.1*1.1)
	}
}
