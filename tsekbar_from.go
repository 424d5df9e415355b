package ewts

import "fmt"

type tsekbarState int

const (
	stPrefix tsekbarState = iota
	stMain
	stSuff1
	stSuff2
	stNone
)

// analyzeTsekbarFrom drives assembleStackFrom across one syllable (spec
// §4.3): a 5-state machine classifies each stack as prefix, root, first
// suffix, or second suffix, and once the syllable ends, structurally
// ambiguous bare-consonant readings are flagged against ambiguousWylie
// and the direct prefix+suffix legality rule.
func analyzeTsekbarFrom(tokens []string, start int, cfg Config, sink *warnSink, line int) (output string, consumed int) {
	pos := start
	var out string
	var stacks []stackFrom
	var vowelExpected []string
	state := stPrefix
	warnCountBefore := len(sink.warnings)

	for {
		tok := tokenAt(tokens, pos)
		_, isCons := consonantMap[tok]
		_, isVowel := vowelMap[tok]
		if !isCons && !isVowel {
			break
		}

		sr := assembleStackFrom(tokens, pos, cfg, sink, line)
		if sr.consumed == 0 {
			break
		}
		out += sr.output
		pos += sr.consumed
		stacks = append(stacks, sr)

		consonantOnly := sr.singleConsA != ""

		switch state {
		case stPrefix:
			if consonantOnly {
				if next := tokenAt(tokens, pos); cfg.Check {
					if !prefixLegalBeforeNext(sr.singleConsA, tokens, pos) {
						sink.addSyllable(line, sr.singleConsA, "not a legal prefix before \""+next+"\"")
					}
				}
				state = stMain
			} else {
				state = stSuff1
			}
		case stMain:
			if consonantOnly {
				// Reported after the loop, unless the whole syllable is an
				// ambiguous bare-consonant spelling that gets a suggestion.
				vowelExpected = append(vowelExpected, sr.singleConsA)
			} else {
				state = stSuff1
			}
		case stSuff1:
			if consonantOnly {
				if cfg.Check && !suffixes[sr.singleConsA] {
					sink.addSyllable(line, sr.singleConsA, "not a legal suffix")
				}
				state = stSuff2
			}
		case stSuff2:
			if consonantOnly {
				prev := ""
				if len(stacks) >= 2 {
					prev = stacks[len(stacks)-2].singleConsA
				}
				if cfg.Check {
					allowed := suff2[sr.singleConsA]
					if allowed == nil || !allowed[prev] {
						sink.addSyllable(line, sr.singleConsA, "not a legal secondary suffix after \""+prev+"\"")
					}
				}
				state = stNone
			} else {
				state = stNone
			}
		case stNone:
			if consonantOnly {
				sink.addSyllable(line, sr.singleConsA, "consonant after second suffix")
			}
		}

		if sr.visarga {
			break
		}
	}

	suggested := false
	if cfg.Check && len(sink.warnings) == warnCountBefore {
		resolveAmbiguity(stacks, sink, line)
		suggested = len(sink.warnings) > warnCountBefore
	}
	if !suggested {
		for _, c := range vowelExpected {
			sink.addSyllable(line, c, "vowel expected")
		}
	}

	return out, pos - start
}

// prefixLegalBeforeNext re-derives the forward consonant string of the
// stack following pos (mirroring consonantStringForward) and checks it
// against the prefix letter's allowed-root set.
func prefixLegalBeforeNext(prefix string, tokens []string, pos int) bool {
	allowed := prefixes[prefix]
	if allowed == nil {
		return false
	}
	cons, _ := consonantStringForward(tokens, pos)
	if cons == "" {
		return false
	}
	return allowed[cons]
}

// resolveAmbiguity implements spec §4.3's two ambiguity checks: it only
// fires when every stack in the syllable is a bare, implicit-"a"
// single-consonant stack (no explicit vowel or multi-consonant root was
// ever seen), since those are the only syllables whose root placement is
// genuinely undetermined by the token stream alone.
func resolveAmbiguity(stacks []stackFrom, sink *warnSink, line int) {
	if len(stacks) < 2 {
		return
	}
	for _, s := range stacks {
		if s.singleConsA == "" {
			return
		}
	}

	switch len(stacks) {
	case 2:
		a, b := stacks[0].singleConsA, stacks[1].singleConsA
		if allowed := prefixes[a]; allowed != nil && allowed[b] && suffixes[b] {
			sink.addSyllable(line, a+b, fmt.Sprintf("ambiguous; canonical spelling is %q", a+"a"+b))
		}
	case 3:
		a, b, c := stacks[0].singleConsA, stacks[1].singleConsA, stacks[2].singleConsA
		key := a + b + c
		if canon, ok := ambiguousWylie[key]; ok {
			sink.addSyllable(line, key, fmt.Sprintf("ambiguous; canonical spelling is %q", canon))
		}
	}
}
