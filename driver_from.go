package ewts

import (
	"strconv"
	"strings"
)

// FromWylie converts EWTS input into Tibetan Unicode (spec §4.4, §6).
// Conversion never fails: malformed or ambiguous input is rendered as
// plausibly as possible and every issue is appended to the returned
// warning list instead.
func FromWylie(input string, cfg Config) (string, []string) {
	sink := newWarnSink(cfg)
	tokens := Tokenize(input)
	n := len(tokens)

	var out strings.Builder
	line := 1
	sawTibetan := false

	i := 0
	if cfg.FixSpacing {
		for i < n && tokens[i] == " " {
			i++
		}
	}
	for i < n {
		tok := tokens[i]

		switch tok {
		case "\xef\xbb\xbf", "\xe2\x80\x8b": // BOM, zero-width space
			i++
			continue
		case "[":
			consumed, text, closed := readBracketed(tokens, i, &line, sink)
			out.WriteString(text)
			if !closed {
				sink.add(line, "unfinished non-Wylie text")
			}
			i += consumed
			continue
		case "\n", "\r", "\r\n":
			out.WriteString("\n")
			line++
			i++
			if cfg.FixSpacing {
				for i < n && tokens[i] == " " {
					i++
				}
			}
			continue
		}

		if strings.HasPrefix(tok, "\\") && len(tok) > 1 {
			if dec, ok := decodeEscapeToken(tok); ok {
				out.WriteString(dec)
				sawTibetan = true
			} else {
				sink.add(line, "invalid hex escape: "+tok)
			}
			i++
			continue
		}

		if uni, ok := otherMap[tok]; ok {
			if tok == " " && cfg.FixSpacing {
				j := i
				for j < n && tokens[j] == " " {
					j++
				}
				out.WriteString(uni)
				i = j
			} else {
				out.WriteString(uni)
				i++
			}
			sawTibetan = true
			continue
		}

		if _, ok := vowelMap[tok]; ok {
			o, consumed := analyzeTsekbarFrom(tokens, i, cfg, sink, line)
			out.WriteString(o)
			if consumed == 0 {
				consumed = 1
			}
			i += consumed
			sawTibetan = true
			continue
		}
		if _, ok := consonantMap[tok]; ok {
			o, consumed := analyzeTsekbarFrom(tokens, i, cfg, sink, line)
			out.WriteString(o)
			if consumed == 0 {
				consumed = 1
			}
			i += consumed
			sawTibetan = true
			continue
		}

		if specialChars[tok] || isASCIIAlpha(tok) {
			sink.add(line, "unexpected character: "+quote(tok))
		}
		out.WriteString(tok)
		i++
	}

	if !sawTibetan {
		sink.add(line, "No Tibetan characters found")
	}

	return out.String(), sink.warnings
}

// readBracketed consumes a `[`-delimited non-Wylie comment starting at
// tokens[start] (which is itself "["), honoring nested brackets and
// decoding escapes inside it, and returns how many tokens it consumed,
// the literal text to emit (brackets included), and whether it closed
// cleanly.
func readBracketed(tokens []string, start int, line *int, sink *warnSink) (int, string, bool) {
	var buf strings.Builder
	buf.WriteString("[")
	depth := 1
	i := start + 1
	n := len(tokens)

	for i < n {
		t := tokens[i]
		switch t {
		case "[":
			depth++
			buf.WriteString(t)
			i++
			continue
		case "]":
			depth--
			i++
			if depth == 0 {
				buf.WriteString("]")
				return i - start, buf.String(), true
			}
			buf.WriteString(t)
			continue
		case "\n", "\r", "\r\n":
			*line++
			buf.WriteString("\n")
			i++
			continue
		}
		if strings.HasPrefix(t, "\\") && len(t) > 1 {
			if dec, ok := decodeEscapeToken(t); ok {
				buf.WriteString(dec)
			} else {
				sink.add(*line, "invalid escape in non-Wylie text: "+t)
			}
			i++
			continue
		}
		buf.WriteString(t)
		i++
	}
	return i - start, buf.String(), false
}

// decodeEscapeToken interprets one escape token as produced by Tokenize:
// \uXXXX and \UXXXXXXXX decode a hex codepoint; any other two-rune
// escape \c passes c through literally. Returns ok=false for a
// truncated or non-hex escape.
func decodeEscapeToken(tok string) (string, bool) {
	runes := []rune(tok)
	if len(runes) < 2 {
		return "", false
	}
	switch runes[1] {
	case 'u':
		if len(runes) != 6 {
			return "", false
		}
		v, err := strconv.ParseInt(string(runes[2:6]), 16, 32)
		if err != nil {
			return "", false
		}
		return string(rune(v)), true
	case 'U':
		if len(runes) != 10 {
			return "", false
		}
		v, err := strconv.ParseInt(string(runes[2:10]), 16, 32)
		if err != nil {
			return "", false
		}
		return string(rune(v)), true
	default:
		if len(runes) != 2 {
			return "", false
		}
		return string(runes[1]), true
	}
}

func isASCIIAlpha(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	c := tok[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
