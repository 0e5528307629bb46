package similarity

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "Skype", "Skype", 100},
		{"prefix of longer", "Skype Inc", "Skype", 100},
		{"suffix of longer", "Facebook Messenger", "Messenger", 100},
		{"case-insensitive", "FACEBOOK, INC.", "facebook, inc.", 100},
		{"whitespace collapsed", "Facebook   Inc", " facebook inc ", 100},
		{"no shared characters", "Zoom", "Alpha", 0},
		{"empty vs non-empty", "", "Skype", 0},
		{"non-empty vs empty", "Skype", "", 0},
		{"both empty", "", "", 100},
		{"both whitespace", "  ", "\t", 100},
		{"whitespace only", "   ", "Skype", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreIsEffectivelySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Skype Inc", "Skype"},
		{"Facebook Messenger", "Messenger"},
		{"Zoom", "Alpha"},
		{"", "Skype"},
	}

	for _, p := range pairs {
		ab := AlmostSimilar(p[0], p[1], DefaultThreshold)
		ba := AlmostSimilar(p[1], p[0], DefaultThreshold)
		if ab != ba {
			t.Errorf("AlmostSimilar(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestAlmostSimilarThreshold(t *testing.T) {
	if !AlmostSimilar("Skype Inc", "Skype", 100) {
		t.Error("substring should reach a threshold of 100")
	}
	if AlmostSimilar("Zoom", "Alpha", 1) {
		t.Error("disjoint strings should not reach a threshold of 1")
	}
	if !AlmostSimilar("Zoom", "Alpha", 0) {
		t.Error("any pair should reach a threshold of 0")
	}
}

func TestNewFuzzyDefaultsThreshold(t *testing.T) {
	if got := NewFuzzy(-1).Threshold; got != DefaultThreshold {
		t.Errorf("NewFuzzy(-1).Threshold = %d, want %d", got, DefaultThreshold)
	}
	if got := NewFuzzy(0).Threshold; got != 0 {
		t.Errorf("NewFuzzy(0).Threshold = %d, want 0", got)
	}
	if !NewFuzzy(0).AlmostSimilar("Zoom", "Alpha") {
		t.Error("a zero threshold should treat any pair as almost similar")
	}
	if got := NewFuzzy(75).Threshold; got != 75 {
		t.Errorf("NewFuzzy(75).Threshold = %d, want 75", got)
	}
}

func TestFuzzyImplementsOracle(t *testing.T) {
	var o Oracle = NewFuzzy(DefaultThreshold)

	if !o.AlmostSimilar("Skype Inc", "Skype") {
		t.Error("expected 'Skype Inc' and 'Skype' to be almost similar")
	}
	if o.AlmostSimilar("Zoom", "Alpha") {
		t.Error("expected 'Zoom' and 'Alpha' not to be almost similar")
	}
}
