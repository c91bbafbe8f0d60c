package rank

import "testing"

func TestCurrent(t *testing.T) {
	tests := []struct {
		totalXP   int
		wantBadge string
	}{
		{0, "E"},
		{199, "E"},
		{200, "D"},
		{299, "D"},
		{300, "C"},
		{400, "B"},
		{499, "B"},
		{500, "A"},
		{599, "A"},
		{600, "S"},
		{700, "SS"},
		{749, "SS"},
		{750, "SSS"},
		{10000, "SSS"},
	}

	for _, tt := range tests {
		if got := Current(tt.totalXP); got.Badge != tt.wantBadge {
			t.Errorf("Current(%d).Badge = %q, want %q", tt.totalXP, got.Badge, tt.wantBadge)
		}
	}
}

func TestCurrentHandlesNegativeXP(t *testing.T) {
	// The ledger can go negative through penalties.
	if got := Current(-10); got.Badge != "E" {
		t.Errorf("Current(-10).Badge = %q, want E", got.Badge)
	}
}

func TestNext(t *testing.T) {
	next, ok := Next(599)
	if !ok || next.Badge != "S" {
		t.Errorf("Next(599) = %v, %v; want rank S", next, ok)
	}

	next, ok = Next(0)
	if !ok || next.Badge != "D" {
		t.Errorf("Next(0) = %v, %v; want rank D", next, ok)
	}

	if _, ok := Next(750); ok {
		t.Error("Next(750) reported a rank above the top")
	}
}

func TestIntensityLabel(t *testing.T) {
	tests := []struct {
		rate int
		want string
	}{
		{0, "Void Wanderer"},
		{20, "Void Wanderer"},
		{21, "Lost Apprentice"},
		{60, "Driven Disciple"},
		{75, "Determined Adept"},
		{85, "Focused Expert"},
		{95, "Disciplined Master"},
		{99, "Living Legend"},
		{100, "Transcendent"},
	}

	for _, tt := range tests {
		if got := IntensityLabel(tt.rate); got != tt.want {
			t.Errorf("IntensityLabel(%d) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}
