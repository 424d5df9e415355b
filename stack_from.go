package ewts

import "strings"

const tsaPhru = "༹" // combining caret diacritic, appended after a stack's consonants

// stackFrom is the transient record produced by assembleStackFrom for one
// orthographic stack: its rendered Unicode fragment, how many tokens it
// consumed, and enough bookkeeping for the tsekbar analyzer's state
// machine and ambiguity resolution to classify it.
type stackFrom struct {
	output string

	// consumed is the number of tokens this stack ate from the stream.
	consumed int

	// singleConsonant is the lone EWTS consonant token when this stack
	// resolved to exactly one consonant (regardless of whether a vowel
	// sign followed it); empty otherwise.
	singleConsonant string

	// singleConsA is singleConsonant narrowed further: set only when no
	// explicit vowel token was consumed, i.e. the stack carries its
	// vowel implicitly as bare "a". This is the root-candidate marker
	// the tsekbar analyzer's ambiguity resolution looks for.
	singleConsA string

	visarga bool
}

// consonantStringForward builds the "+"-joined consonant string of the
// stack that would start at tokens[i]: the main consonant plus up to two
// trailing subscript letters, skipping carets. Used to validate
// superscript and prefix legality against a whole root cluster instead of
// just the next bare letter (e.g. recognizing "k+y" as the root of "rkya").
func consonantStringForward(tokens []string, i int) (string, int) {
	first := tokenAt(tokens, i)
	if _, ok := consonantMap[first]; !ok || first == "a" {
		return "", 0
	}
	parts := []string{first}
	j := i + 1
	for len(parts) < 3 {
		for tokenAt(tokens, j) == "^" {
			j++
		}
		t := tokenAt(tokens, j)
		if _, ok := subscripts[t]; !ok {
			break
		}
		parts = append(parts, t)
		j++
	}
	return strings.Join(parts, "+"), j - i
}

// assembleStackFrom implements spec §4.2: it consumes exactly one
// orthographic stack starting at tokens[start] and returns its Unicode
// rendering plus the bookkeeping the tsekbar analyzer needs.
func assembleStackFrom(tokens []string, start int, cfg Config, sink *warnSink, line int) stackFrom {
	i := start
	var out strings.Builder

	var stackCons []string // consonant letters stacked so far, in order
	caretCount := 0
	sawVowel := false
	visarga := false
	finalsByClass := map[string]bool{}

	absorbCarets := func() {
		for tokenAt(tokens, i) == "^" {
			caretCount++
			i++
		}
	}

	// 1. Superscript detection.
	if tok := tokenAt(tokens, i); superscripts[tok] != nil {
		nextCons, clen := consonantStringForward(tokens, i+1)
		if clen > 0 && superscripts[tok][nextCons] {
			out.WriteString(consonantMap[tok])
			stackCons = append(stackCons, tok)
			i++
			absorbCarets()
		}
	}

	// 2. Main consonant (or achen-bearing "a").
	if tok := tokenAt(tokens, i); tok == "a" {
		out.WriteString(vowelMap["a"])
		i++
		absorbCarets()
	} else if _, ok := consonantMap[tok]; ok {
		if out.Len() > 0 {
			out.WriteString(subjoinedMap[tok])
		} else {
			out.WriteString(consonantMap[tok])
		}
		stackCons = append(stackCons, tok)
		i++
		absorbCarets()
	}

	// 3. Subjoined letters, up to two iterations. An illegal combination
	// is still glued on (matching the reference converter's behavior) and
	// flagged with a warning rather than silently split into a second,
	// unrelated stack.
	for iter := 0; iter < 2; iter++ {
		tok := tokenAt(tokens, i)
		sub, ok := subscripts[tok]
		if !ok {
			break
		}
		if tok == "l" && len(stackCons) >= 2 {
			break
		}
		last := ""
		if len(stackCons) > 0 {
			last = stackCons[len(stackCons)-1]
		}
		joined := strings.Join(stackCons, "+")
		allowed := (tok == "w" && last == "y") || sub[last] || sub[joined]
		if !allowed {
			sink.add(line, "subjoined \""+tok+"\" not expected after \""+last+"\"")
		}
		out.WriteString(subjoinedMap[tok])
		stackCons = append(stackCons, tok)
		i++
		absorbCarets()
	}

	// 4. Caret placement.
	if caretCount > 0 {
		out.WriteString(tsaPhru)
		if caretCount > 1 {
			sink.add(line, "multiple carets on one stack")
		}
	}

	// 5. Vowels. A bare "a" here is the explicit (but visually silent)
	// spelling-out of the default vowel already implied by an unmarked
	// stack; any other vowel token carries a combining sign.
	if tok := tokenAt(tokens, i); tok == "a" {
		if out.Len() == 0 {
			out.WriteString(vowelMap["a"])
		}
		sawVowel = true
		i++
	} else if sign, ok := vowelMap[tok]; ok {
		if out.Len() == 0 {
			out.WriteString(vowelMap["a"])
		}
		out.WriteString(sign)
		sawVowel = true
		i++
	}

	// 6. Explicit join.
	for tokenAt(tokens, i) == "+" {
		j := i + 1
		nxt := tokenAt(tokens, j)
		_, nxtIsVowel := vowelMap[nxt]
		_, nxtIsCons := consonantMap[nxt]
		_, nxtIsSub := subscripts[nxt]

		switch {
		case nxt == "a" && sawVowel:
			sink.add(line, "'a' after a vowel sign in the same stack")
			i = j + 1
		case nxt == "a":
			sawVowel = true
			i = j + 1
		case nxtIsSub:
			out.WriteString(subjoinedMap[nxt])
			stackCons = append(stackCons, nxt)
			i = j + 1
			for tokenAt(tokens, i) == "^" {
				out.WriteString(tsaPhru)
				i++
			}
		case nxtIsVowel:
			out.WriteString(vowelMap[nxt])
			sawVowel = true
			i = j + 1
		case nxtIsCons:
			if sawVowel {
				sink.add(line, "consonant after a vowel sign in the same stack")
			}
			out.WriteString(subjoinedMap[nxt])
			stackCons = append(stackCons, nxt)
			i = j + 1
		default:
			sink.add(line, "'+' not followed by a vowel or subjoinable consonant")
			i = j
		}
	}

	// 7. Finals.
	for {
		tok := tokenAt(tokens, i)
		cls, ok := finalClassMap[tok]
		if !ok {
			break
		}
		if finalsByClass[cls] {
			sink.add(line, "duplicate final in the same class: "+tok)
			i++
			continue
		}
		finalsByClass[cls] = true
		out.WriteString(finalMap[tok])
		if tok == "H" {
			visarga = true
		}
		i++
	}

	// 8. Dot.
	if tokenAt(tokens, i) == "." {
		i++
	}

	// 9. Backtrack guard (spec §4.2, §3 invariant): a multi-consonant
	// stack reached this point via step 1's superscript gate (which does
	// not combine on failure), step 3's subscript combine-and-warn, or an
	// explicit "+" in step 6 — every path already wrote a glyph to out
	// before appending to stackCons. A missing vowel token does not make
	// such a stack illegal either way, since an unmarked stack always
	// carries an implicit "a". There is therefore nothing left for this
	// guard to revert in this implementation; it stays as the named
	// safety net spec §3 describes, in case a future change to those
	// steps lets an unwritten multi-letter run through.
	if len(stackCons) > 1 && out.Len() == 0 {
		firstTok := stackCons[0]
		return stackFrom{
			output:          assembleSingleConsonantStack(firstTok),
			consumed:        1,
			singleConsonant: firstTok,
			singleConsA:     firstTok,
		}
	}

	result := stackFrom{
		output:   out.String(),
		consumed: i - start,
		visarga:  visarga,
	}
	if len(stackCons) == 1 {
		result.singleConsonant = stackCons[0]
		if !sawVowel {
			result.singleConsA = stackCons[0]
		}
	}
	return result
}

func assembleSingleConsonantStack(tok string) string {
	return consonantMap[tok]
}
