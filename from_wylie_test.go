package ewts

import (
	"strings"
	"testing"
)

func TestFromWylie_Scenarios(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		input      string
		wantOutput string
		wantWarn   bool
	}{
		{
			name:       "sems can thams cad",
			input:      "sems can thams cad",
			wantOutput: "སེམས་ཅན་ཐམས་ཅད་",
			wantWarn:   false,
		},
		{
			name:       "bka' 'gyur",
			input:      "bka' 'gyur",
			wantOutput: "བཀའ་འགྱུར་",
			wantWarn:   false,
		},
		{
			name:     "dgs ambiguous",
			input:    "dgs",
			wantWarn: true,
		},
		{
			name:     "mngs ambiguous",
			input:    "mngs",
			wantWarn: true,
		},
		{
			name:       "k+Sh explicit stack",
			input:      "k+Sh",
			wantOutput: "ཀྵ",
			wantWarn:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, warnings := FromWylie(tt.input, cfg)
			if tt.wantOutput != "" && out != tt.wantOutput {
				t.Errorf("FromWylie(%q) = %q, want %q", tt.input, out, tt.wantOutput)
			}
			if tt.wantWarn && len(warnings) == 0 {
				t.Errorf("FromWylie(%q) produced no warnings, want at least one", tt.input)
			}
			if !tt.wantWarn && len(warnings) != 0 {
				t.Errorf("FromWylie(%q) produced unexpected warnings: %v", tt.input, warnings)
			}
		})
	}
}

func TestFromWylie_AmbiguitySuggestionRoundTrips(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct{ input, canonical string }{
		{"dgs", "dgas"},
		{"mngs", "mangs"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, warnings := FromWylie(tt.input, cfg)
			if len(warnings) == 0 {
				t.Fatalf("expected an ambiguity warning for %q", tt.input)
			}
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.canonical) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v did not mention canonical spelling %q", warnings, tt.canonical)
			}

			canonOut, canonWarnings := FromWylie(tt.canonical, cfg)
			origOut, _ := FromWylie(tt.input, cfg)
			if canonOut != origOut {
				t.Errorf("canonical spelling %q produced different Unicode (%q) than %q (%q)",
					tt.canonical, canonOut, tt.input, origOut)
			}
			if len(canonWarnings) != 0 {
				t.Errorf("canonical spelling %q should round-trip with no warnings, got %v", tt.canonical, canonWarnings)
			}
		})
	}
}

func TestFromWylie_BoundaryCases(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty input", func(t *testing.T) {
		out, warnings := FromWylie("", cfg)
		if out != "" {
			t.Errorf("expected empty output, got %q", out)
		}
		if len(warnings) != 1 {
			t.Errorf("expected exactly one warning, got %v", warnings)
		}
	})

	t.Run("only spaces with fix_spacing", func(t *testing.T) {
		out, _ := FromWylie("   ", cfg)
		if out != "" {
			t.Errorf("expected leading spaces stripped to empty output, got %q", out)
		}
	})

	t.Run("BOM only", func(t *testing.T) {
		out, warnings := FromWylie("\xef\xbb\xbf", cfg)
		if out != "" {
			t.Errorf("expected empty output, got %q", out)
		}
		if len(warnings) == 0 {
			t.Error("expected a 'no Tibetan' warning")
		}
	})

	t.Run("nested brackets close correctly", func(t *testing.T) {
		out, warnings := FromWylie("ka[[inner]outer]", cfg)
		if !strings.Contains(out, "[[inner]outer]") {
			t.Errorf("expected bracketed text preserved, got %q", out)
		}
		if len(warnings) != 0 {
			t.Errorf("expected no warnings, got %v", warnings)
		}
	})

	t.Run("unclosed bracket warns", func(t *testing.T) {
		_, warnings := FromWylie("ka[unfinished", cfg)
		found := false
		for _, w := range warnings {
			if strings.Contains(w, "unfinished") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected an unfinished-bracket warning, got %v", warnings)
		}
	})

	t.Run("truncated escape warns and drops", func(t *testing.T) {
		_, warnings := FromWylie(`\uFF`, cfg)
		if len(warnings) == 0 {
			t.Error("expected a warning for truncated hex escape")
		}
	})
}

func TestTokenCoverageLaw(t *testing.T) {
	inputs := []string{"sems can thams cad", "bka' 'gyur", "dgs", "k+Sh", "[a [b] c]"}
	for _, in := range inputs {
		tokens := Tokenize(in)
		if strings.Join(tokens, "") != in {
			t.Errorf("token coverage violated for %q", in)
		}
	}
}

func BenchmarkFromWylie(b *testing.B) {
	cfg := DefaultConfig()
	input := strings.Repeat("sems can thams cad bka' 'gyur ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FromWylie(input, cfg)
	}
}
