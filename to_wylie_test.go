package ewts

import (
	"strings"
	"testing"
)

func TestToWylie_Scenario(t *testing.T) {
	cfg := DefaultConfig()
	out, warnings := ToWylie("ཕྱོགས་", true, cfg)
	if out != "phyogs " {
		t.Errorf("ToWylie(%q) = %q, want %q", "ཕྱོགས་", out, "phyogs ")
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestToWylie_BoundaryCases(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty input", func(t *testing.T) {
		out, warnings := ToWylie("", true, cfg)
		if out != "" {
			t.Errorf("expected empty output, got %q", out)
		}
		if len(warnings) != 1 {
			t.Errorf("expected one 'no Tibetan' warning, got %v", warnings)
		}
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		first := ToWylieDefault("བཀྲ་ཤིས་བདེ་ལེགས།")
		second := ToWylieDefault(first)
		firstUnescaped := strings.NewReplacer("[", "", "]", "").Replace(first)
		secondUnescaped := strings.NewReplacer("[", "", "]", "").Replace(second)
		if firstUnescaped != secondUnescaped {
			t.Errorf("ToWylie is not idempotent: %q -> %q", first, second)
		}
	})
}

func TestFromWylie_ToWylie_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	inputs := []string{
		"sems can thams cad",
		"bka' 'gyur",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			unicode, fromWarnings := FromWylie(in, cfg)
			if len(fromWarnings) != 0 {
				t.Fatalf("unexpected warnings converting %q: %v", in, fromWarnings)
			}
			back, toWarnings := ToWylie(unicode, false, cfg)
			if len(toWarnings) != 0 {
				t.Errorf("unexpected warnings converting back %q: %v", unicode, toWarnings)
			}
			// Round-trip on well-formed Wylie holds modulo whitespace
			// normalization between tsek and the ASCII space it came from.
			norm := func(s string) string { return strings.Join(strings.Fields(s), " ") }
			if norm(back) != norm(in) {
				t.Errorf("round trip mismatch: FromWylie(%q) -> ToWylie -> %q", in, back)
			}
		})
	}
}

func BenchmarkToWylie(b *testing.B) {
	cfg := DefaultConfig()
	input := strings.Repeat("བཀྲ་ཤིས་བདེ་ལེགས། ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToWylie(input, true, cfg)
	}
}
