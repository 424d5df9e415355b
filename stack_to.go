package ewts

import "strings"

// stackTo is the transient record produced by decomposeStackTo for one
// run of Tibetan codepoints: its consonant members (top plus any
// subjoined letters) as EWTS tokens, its vowel signs, its finals, and
// enough bookkeeping for the tsekbar serializer to classify the stack as
// a prefix, root, or suffix.
type stackTo struct {
	members    []string
	caret      bool
	vowels     []string
	finals     []string
	visarga    bool
	consStr    string
	singleCons string // set iff exactly one non-"a" consonant, bare (no vowel/caret/final)
	consumed   int
}

// decomposeStackTo implements spec §4.5: starting at a codepoint known to
// be a TopByCodepoint member, it groups one orthographic stack (top,
// subjoined letters, vowel signs, finals) and applies the achen-elision,
// long-vowel-fusion, and caret-shortcut post-processing rules.
func decomposeStackTo(runes []rune, start int, cfg Config, sink *warnSink, line int) stackTo {
	n := len(runes)
	top, ok := topByCodepoint[runes[start]]
	if !ok {
		return stackTo{}
	}
	i := start + 1
	members := []string{top}

	for i < n {
		sj, ok := subjoinedByCodepoint[runes[i]]
		if !ok {
			break
		}
		members = append(members, sj)
		i++
	}

	var vowels []string
	for i < n {
		v, ok := vowelByCodepoint[runes[i]]
		if !ok {
			break
		}
		vowels = append(vowels, v)
		i++
	}

	caret := false
	visarga := false
	var finals []string
	finalsByClass := map[string]bool{}
	for i < n {
		cls, ok := finalClassByCodepoint[runes[i]]
		if !ok {
			break
		}
		tok := finalByCodepoint[runes[i]]
		if finalsByClass[cls] {
			sink.add(line, "duplicate final of the same class")
			i++
			continue
		}
		finalsByClass[cls] = true
		switch tok {
		case "^":
			caret = true
		case "H":
			visarga = true
			finals = append(finals, tok)
		default:
			finals = append(finals, tok)
		}
		i++
	}

	// Ordering check: a subjoined or vowel codepoint arriving after
	// finals have already started is out of place.
	if i < n {
		if _, ok := subjoinedByCodepoint[runes[i]]; ok {
			sink.add(line, "subjoined letter out of order")
		} else if _, ok := vowelByCodepoint[runes[i]]; ok {
			sink.add(line, "vowel sign out of order")
		}
	}

	// Achen elision: a bare "a" top carrying at least one vowel sign is
	// dropped, the vowel sign alone stands for the syllable.
	if members[0] == "a" && len(vowels) > 0 {
		members = members[1:]
	}

	// Long-vowel fusion: A + {i,u,-i} -> I/U/-I.
	if len(vowels) >= 2 && vowels[0] == "A" {
		if promoted, ok := longVowelMap[vowels[1]]; ok {
			fused := append([]string{promoted}, vowels[2:]...)
			vowels = fused
		}
	}

	// Caret shortcut: ph^ -> f, b^ -> v, only when ph or b is the stack's
	// sole consonant; any vowels and finals on the stack are kept.
	if caret && len(members) == 1 {
		if repl, ok := caretShortcut[members[0]]; ok {
			members[0] = repl
			caret = false
		}
	}

	consStr := strings.Join(members, "+")

	var singleCons string
	if len(members) == 1 && members[0] != "a" && len(vowels) == 0 && !caret && len(finals) == 0 {
		singleCons = members[0]
	}

	return stackTo{
		members:    members,
		caret:      caret,
		vowels:     vowels,
		finals:     finals,
		visarga:    visarga,
		consStr:    consStr,
		singleCons: singleCons,
		consumed:   i - start,
	}
}
