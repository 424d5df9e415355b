package ewts

import (
	"fmt"
	"strings"
)

// renderFlags records which implicit-vowel elision and disambiguation
// decisions apply to one stack in a tsekbar, decided by
// classifyTsekbarTo before any stack is rendered.
type renderFlags struct {
	prefix bool
	suffix bool
	suff2  bool
	dot    bool
}

// serializeTsekbarTo implements spec §4.6: it repeats decomposeStackTo
// across a run of stacks (a tsekbar), classifies which stacks are
// prefix/root/suffix/suff2, and renders each accordingly.
func serializeTsekbarTo(runes []rune, start int, cfg Config, sink *warnSink, line int) (string, int) {
	var stacks []stackTo
	pos := start
	for pos < len(runes) {
		if _, ok := topByCodepoint[runes[pos]]; !ok {
			break
		}
		st := decomposeStackTo(runes, pos, cfg, sink, line)
		if st.consumed == 0 {
			break
		}
		stacks = append(stacks, st)
		pos += st.consumed
		if st.visarga {
			break
		}
	}
	if len(stacks) == 0 {
		return "", 0
	}

	flags := classifyTsekbarTo(stacks, cfg, sink, line)

	var out strings.Builder
	for idx, st := range stacks {
		out.WriteString(renderStackTo(st, flags[idx]))
	}
	return out.String(), pos - start
}

func classifyTsekbarTo(stacks []stackTo, cfg Config, sink *warnSink, line int) []renderFlags {
	flags := make([]renderFlags, len(stacks))
	last := len(stacks) - 1

	if len(stacks) >= 2 && stacks[0].singleCons != "" {
		nextCons := strings.TrimSuffix(stacks[1].consStr, "+w")
		if allowed := prefixes[stacks[0].singleCons]; allowed != nil && allowed[nextCons] {
			flags[0].prefix = true
		}
	}

	if stacks[last].singleCons != "" && suffixes[stacks[last].singleCons] {
		flags[last].suffix = true
	}

	if len(stacks) >= 2 {
		twoFromLast := last - 1
		if stacks[twoFromLast].singleCons != "" && suffixes[stacks[twoFromLast].singleCons] &&
			stacks[last].singleCons != "" {
			if allowed := suff2[stacks[last].singleCons]; allowed != nil && allowed[stacks[twoFromLast].singleCons] {
				flags[twoFromLast].suffix = true
				flags[last].suff2 = true
			}
		}
	}

	if len(stacks) == 2 && flags[0].prefix && flags[last].suffix {
		flags[0].prefix = false
	}

	if len(stacks) == 3 &&
		stacks[0].singleCons != "" && stacks[1].singleCons != "" && stacks[2].singleCons != "" &&
		prefixes[stacks[0].singleCons] != nil && stacks[2].singleCons == "s" && suff2["s"][stacks[1].singleCons] {
		key := stacks[0].singleCons + stacks[1].singleCons + stacks[2].singleCons
		if idx, ok := ambiguousKey[key]; ok {
			flags[idx] = renderFlags{}
			if idx+1 < len(flags) {
				flags[idx+1].suff2 = false
			}
		} else if cfg.Check {
			sink.addSyllable(line, key, "ambiguous syllable, defaulting root to the second letter")
			flags[1] = renderFlags{}
			if 2 < len(flags) {
				flags[2].suff2 = false
			}
		}
	}

	if len(stacks) >= 2 && flags[0].prefix {
		combo := stacks[0].singleCons + "+" + stacks[1].consStr
		if tibStacks[combo] {
			flags[0].dot = true
		}
	}

	return flags
}

func renderStackTo(st stackTo, fl renderFlags) string {
	var b strings.Builder

	rendered := st.consStr
	if tibStacks[rendered] {
		rendered = strings.ReplaceAll(rendered, "+", "")
	}
	b.WriteString(rendered)

	if st.caret {
		b.WriteString("^")
	}

	if len(st.vowels) > 0 {
		b.WriteString(strings.Join(st.vowels, "+"))
	} else if !fl.prefix && !fl.suffix && !fl.suff2 && !strings.HasSuffix(rendered, "a") {
		b.WriteString("a")
	}

	for _, f := range st.finals {
		b.WriteString(f)
	}
	if fl.dot {
		b.WriteString(".")
	}

	return b.String()
}

// ToWylie converts Tibetan Unicode to EWTS (spec §4.6, §6). When escape
// is true, codepoints with no Wylie rendering are wrapped in `[...]`,
// backslash-escaping any literal brackets inside; Tibetan-plane
// codepoints lacking a Wylie form inside the bracket are further escaped
// as \uXXXX. When escape is false, such codepoints pass through
// verbatim.
func ToWylie(input string, escape bool, cfg Config) (string, []string) {
	sink := newWarnSink(cfg)
	runes := []rune(normalizeForToWylie(input))
	n := len(runes)

	var out strings.Builder
	line := 1
	sawTibetan := false

	i := 0
	for i < n {
		r := runes[i]

		switch r {
		case '\n':
			out.WriteByte('\n')
			line++
			i++
			continue
		case '\r':
			if i+1 < n && runes[i+1] == '\n' {
				i++
			}
			out.WriteByte('\n')
			line++
			i++
			continue
		case 0xfeff, 0x200b: // BOM, zero-width space
			i++
			continue
		}

		if _, ok := topByCodepoint[r]; ok {
			text, consumed := serializeTsekbarTo(runes, i, cfg, sink, line)
			out.WriteString(text)
			if consumed == 0 {
				consumed = 1
			}
			i += consumed
			sawTibetan = true
			continue
		}

		if tok, ok := otherByCodepoint[r]; ok {
			if tok == "_" && !escape {
				j := i
				for j < n && runes[j] == r {
					j++
				}
				out.WriteString(strings.Repeat("_", j-i))
				i = j
			} else {
				out.WriteString(tok)
				i++
			}
			sawTibetan = true
			continue
		}

		if r >= 0x0f00 && r <= 0x0fff {
			if escape {
				out.WriteString(fmt.Sprintf("[\\u%04x]", r))
			} else {
				out.WriteRune(r)
			}
			i++
			continue
		}

		if !escape {
			out.WriteRune(r)
			i++
			continue
		}

		out.WriteString("[")
		for i < n {
			rr := runes[i]
			if rr >= 0x0f00 && rr <= 0x0fff {
				break
			}
			switch rr {
			case '[':
				out.WriteString("\\[")
			case ']':
				out.WriteString("\\]")
			default:
				out.WriteRune(rr)
			}
			i++
		}
		out.WriteString("]")
	}

	if !sawTibetan {
		sink.add(line, "No Tibetan characters found")
	}

	return out.String(), sink.warnings
}

// ToWylieDefault mirrors the original implementation's zero-argument
// toWylie: EWTS output with bracket-escaping enabled, warnings discarded.
func ToWylieDefault(input string) string {
	out, _ := ToWylie(input, true, DefaultConfig())
	return out
}

func normalizeForToWylie(s string) string {
	for _, pair := range precomposedExpansions {
		s = strings.ReplaceAll(s, pair.from, pair.to)
	}
	return s
}
