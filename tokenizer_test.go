package ewts

import (
	"strings"
	"testing"
)

func TestTokenize_Concatenation(t *testing.T) {
	inputs := []string{
		"sems can thams cad",
		"bka' 'gyur",
		"dgs",
		"k+Sh",
		`ཀ\U0001f600 \x plain [bracket \[ text]`,
		"",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			tokens := Tokenize(in)
			if got := strings.Join(tokens, ""); got != in {
				t.Errorf("concatenation mismatch: got %q, want %q", got, in)
			}
		})
	}
}

func TestTokenize_LongestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"kh", []string{"kh"}},
		{"tsh", []string{"tsh"}},
		{"k", []string{"k"}},
		{"-th", []string{"-th"}},
		{"dzh", []string{"dzh"}},
		{"ng", []string{"ng"}},
		{"a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenize_EscapeSequences(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`ཀ`, `ཀ`},
		{`\U0001f600`, `\U0001f600`},
		{`\[`, `\[`},
		{`\u0f`, `\u0f`}, // truncated: tokenizer still consumes what's left
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Tokenize(%q) = %v, want single token %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenAt_OutOfRange(t *testing.T) {
	tokens := []string{"k", "a"}
	if tokenAt(tokens, -1) != "" {
		t.Error("tokenAt(-1) should be empty")
	}
	if tokenAt(tokens, 2) != "" {
		t.Error("tokenAt(len) should be empty")
	}
	if tokenAt(tokens, 0) != "k" {
		t.Error("tokenAt(0) should return first token")
	}
}

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat("sems can thams cad bka' 'gyur dgs k+Sh ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(input)
	}
}
