package cli

import "testing"

func TestReviewScoresProvided(t *testing.T) {
	tests := []struct {
		name string
		cmd  ReviewSubmitCmd
		want bool
	}{
		{"no flags", ReviewSubmitCmd{}, false},
		{"all flags", ReviewSubmitCmd{Productivity: 8, Health: 7, Creativity: 6, Social: 5, Satisfaction: 9}, true},
		{"single non-leading flag", ReviewSubmitCmd{Health: 7}, true},
		{"only productivity", ReviewSubmitCmd{Productivity: 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.scoresProvided(); got != tt.want {
				t.Errorf("scoresProvided() = %v, want %v", got, tt.want)
			}
		})
	}
}
