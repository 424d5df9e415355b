package ewts

// Tokenize splits EWTS input into atomic tokens by left-to-right greedy
// longest match against multiCharTokens, falling back to single runes.
// Backslash escapes (\uXXXX, \UXXXXXXXX, \<char>) are each emitted as one
// token, regardless of whether their hex payload turns out to be valid —
// validation happens downstream in the driver, not here.
//
// Concatenating the returned tokens always reproduces input exactly: no
// token is ever split across an input character boundary.
func Tokenize(input string) []string {
	runes := []rune(input)
	n := len(runes)
	tokens := make([]string, 0, n)

	for i := 0; i < n; {
		c := runes[i]

		if c == '\\' {
			tok := escapeToken(runes, i)
			tokens = append(tokens, tok)
			i += len([]rune(tok))
			continue
		}

		if maxLen, ok := tokensStart[c]; ok {
			upper := maxLen
			if i+upper > n {
				upper = n - i
			}
			matched := false
			for l := upper; l >= 2; l-- {
				cand := string(runes[i : i+l])
				if multiCharTokens[cand] {
					tokens = append(tokens, cand)
					i += l
					matched = true
					break
				}
			}
			if matched {
				continue
			}
		}

		tokens = append(tokens, string(c))
		i++
	}

	return tokens
}

// escapeToken returns the raw escape token starting at runes[i] (which is
// '\\'): 6 runes for \uXXXX, 10 for \UXXXXXXXX, 2 for \<char>. When fewer
// runes remain than the declared length, it consumes whatever is left so
// the concatenation guarantee still holds; the driver treats a
// short/malformed escape as invalid hex.
func escapeToken(runes []rune, i int) string {
	n := len(runes)
	want := 2
	if i+1 < n {
		switch runes[i+1] {
		case 'u':
			want = 6
		case 'U':
			want = 10
		}
	}
	if i+want > n {
		want = n - i
	}
	return string(runes[i : i+want])
}

// tokenAt is a bounds-checked token accessor: an out-of-range index
// returns the empty string, which never matches any real EWTS token, so
// callers can peek past the end of the stream without a sentinel value.
func tokenAt(tokens []string, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i]
}
