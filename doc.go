// Package ewts implements a bidirectional converter between Tibetan Unicode
// text (the U+0F00–U+0FFF block) and the Extended Wylie Transliteration
// Scheme (EWTS), an ASCII romanization used by Tibetan scholars.
//
// The two entry points are FromWylie, which tokenizes EWTS and assembles
// syllable-internal consonant stacks into Unicode, and ToWylie, which
// decomposes Unicode codepoint sequences back into minimal, disambiguated
// EWTS. Both directions run a per-syllable (tsekbar) analyzer that enforces
// Tibetan orthography and collects non-fatal warnings about malformed or
// ambiguous input; neither direction ever fails outright.
package ewts
