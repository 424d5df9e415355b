package ewts

// Static, process-lifetime linguistic tables: the bidirectional maps
// between EWTS tokens and Tibetan Unicode codepoint sequences, and the
// orthographic legality tables (which consonants may combine as
// superscript/subscript/prefix/suffix). All of this is built once at
// package init and is read-only thereafter, so it is safe to share across
// goroutines without locking.

func setOf(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

// consonantMap is the EWTS token -> Unicode "top" form.
var consonantMap = map[string]string{
	"k": "ཀ", "kh": "ཁ", "g": "ག",
	"gh": "གྷ", "g+h": "གྷ",
	"ng": "ང", "c": "ཅ", "ch": "ཆ", "j": "ཇ", "ny": "ཉ",
	"T": "ཊ", "-t": "ཊ",
	"Th": "ཋ", "-th": "ཋ",
	"D": "ཌ", "-d": "ཌ",
	"Dh": "ཌྷ", "D+h": "ཌྷ", "-dh": "ཌྷ", "-d+h": "ཌྷ",
	"N": "ཎ", "-n": "ཎ",
	"t": "ཏ", "th": "ཐ", "d": "ད",
	"dh": "དྷ", "d+h": "དྷ",
	"n": "ན", "p": "པ", "ph": "ཕ", "b": "བ",
	"bh": "བྷ", "b+h": "བྷ",
	"m": "མ", "ts": "ཙ", "tsh": "ཚ", "dz": "ཛ",
	"dzh": "ཛྷ", "dz+h": "ཛྷ",
	"w": "ཝ", "zh": "ཞ", "z": "ཟ",
	"'": "འ", "‘": "འ", "’": "འ",
	"y": "ཡ", "r": "ར", "l": "ལ",
	"sh": "ཤ", "Sh": "ཥ", "-sh": "ཥ",
	"s": "ས", "h": "ཧ",
	"W": "ཝ", "Y": "ཡ", "R": "ཪ",
	"f": "ཕ༹", "v": "བ༹",
}

// subjoinedMap is the EWTS token -> Unicode subjoined form.
var subjoinedMap = map[string]string{
	"k": "ྐ", "kh": "ྑ", "g": "ྒ",
	"gh": "ྒྷ", "g+h": "ྒྷ",
	"ng": "ྔ", "c": "ྕ", "ch": "ྖ", "j": "ྗ", "ny": "ྙ",
	"T": "ྚ", "-t": "ྚ",
	"Th": "ྛ", "-th": "ྛ",
	"D": "ྜ", "-d": "ྜ",
	"Dh": "ྜྷ", "D+h": "ྜྷ", "-dh": "ྜྷ", "-d+h": "ྜྷ",
	"N": "ྞ", "-n": "ྞ",
	"t": "ྟ", "th": "ྠ", "d": "ྡ",
	"dh": "ྡྷ", "d+h": "ྡྷ",
	"n": "ྣ", "p": "ྤ", "ph": "ྥ", "b": "ྦ",
	"bh": "ྦྷ", "b+h": "ྦྷ",
	"m": "ྨ", "ts": "ྩ", "tsh": "ྪ", "dz": "ྫ",
	"dzh": "ྫྷ", "dz+h": "ྫྷ",
	"w": "ྭ", "zh": "ྮ", "z": "ྯ",
	"'": "ྰ", "‘": "ྰ", "’": "ྰ",
	"y": "ྱ", "r": "ྲ", "l": "ླ",
	"sh": "ྴ", "Sh": "ྵ", "-sh": "ྵ",
	"s": "ྶ", "h": "ྷ", "a": "ྸ",
	"W": "ྺ", "Y": "ྻ", "R": "ྼ",
}

// vowelMap is the EWTS vowel token -> Unicode vowel sign (or achen for "a").
var vowelMap = map[string]string{
	"a": "ཨ", "A": "ཱ",
	"i": "ི", "I": "ཱི",
	"u": "ུ", "U": "ཱུ",
	"e": "ེ", "ai": "ཻ",
	"o": "ོ", "au": "ཽ",
	"-i": "ྀ", "-I": "ཱྀ",
}

// finalMap is the EWTS final/modifier token -> Unicode codepoint(s).
var finalMap = map[string]string{
	"M": "ཾ", "~M`": "ྂ", "~M": "ྃ",
	"X": "༷", "~X": "༵",
	"H": "ཿ", "?": "྄", "^": "༹",
}

// finalClassMap groups finals so at most one per class attaches to a stack.
var finalClassMap = map[string]string{
	"M": "M", "~M`": "M", "~M": "M",
	"X": "X", "~X": "X",
	"H": "H", "?": "?", "^": "^",
}

// otherMap covers digits, tsek, shad, and other stand-alone symbols.
var otherMap = map[string]string{
	"0": "༠", "1": "༡", "2": "༢", "3": "༣", "4": "༤",
	"5": "༥", "6": "༦", "7": "༧", "8": "༨", "9": "༩",
	" ": "་", "*": "༌", "/": "།", "//": "༎", ";": "༏",
	"|": "༑", "!": "༈", ":": "༔", "_": " ",
	"=": "༴", "<": "༺", ">": "༻", "(": "༼", ")": "༽",
	"@": "༄", "#": "༅", "$": "༆", "%": "༇",
}

// specialChars are structurally meaningful single characters flagged when
// they occur out of context.
var specialChars = setOf(".", "+", "-", "~", "^", "?", "`", "]")

// superscripts maps a potential superscript letter to the set of root
// stacks that may occur below it.
var superscripts = map[string]map[string]bool{
	"r": setOf("k", "g", "ng", "j", "ny", "t", "d", "n", "b", "m", "ts", "dz",
		"k+y", "g+y", "m+y", "b+w", "ts+w", "g+w"),
	"l": setOf("k", "g", "ng", "c", "j", "t", "d", "p", "b", "h"),
	"s": setOf("k", "g", "ng", "ny", "t", "d", "n", "p", "b", "m", "ts",
		"k+y", "g+y", "p+y", "b+y", "m+y",
		"k+r", "g+r", "p+r", "b+r", "m+r", "n+r"),
}

// subscripts maps a subscript letter to the set of stacks allowed above it.
var subscripts = map[string]map[string]bool{
	"y": setOf("k", "kh", "g", "p", "ph", "b", "m",
		"r+k", "r+g", "r+m", "s+k", "s+g", "s+p", "s+b", "s+m"),
	"r": setOf("k", "kh", "g", "t", "th", "d", "n", "p", "ph", "b", "m", "sh",
		"s", "h", "dz",
		"s+k", "s+g", "s+p", "s+b", "s+m", "s+n"),
	"l": setOf("k", "g", "b", "r", "s", "z"),
	"w": setOf("k", "kh", "g", "c", "ny", "t", "d", "ts", "tsh", "zh", "z",
		"r", "l", "sh", "s", "h",
		"g+r", "d+r", "ph+y", "r+g", "r+ts"),
}

// prefixes maps a prefix letter to the set of consonants/stacks legally
// following it.
var prefixes = map[string]map[string]bool{
	"g": setOf("c", "ny", "t", "d", "n", "ts", "zh", "z", "y", "sh", "s"),
	"d": setOf("k", "g", "ng", "p", "b", "m",
		"k+y", "g+y", "p+y", "b+y", "m+y", "k+r", "g+r", "p+r", "b+r"),
	"b": setOf("k", "g", "c", "t", "d", "ts", "zh", "z", "sh", "s", "r", "l",
		"k+y", "g+y", "k+r", "g+r", "r+l", "s+l",
		"r+k", "r+g", "r+ng", "r+j", "r+ny", "r+t", "r+d", "r+n", "r+ts", "r+dz",
		"s+k", "s+g", "s+ng", "s+ny", "s+t", "s+d", "s+n", "s+ts",
		"r+k+y", "r+g+y", "s+k+y", "s+g+y", "s+k+r", "s+g+r",
		"l+d", "l+t", "k+l", "s+r", "z+l", "s+w"),
	"m": setOf("kh", "g", "ng", "ch", "j", "ny", "th", "d", "n", "tsh", "dz",
		"kh+y", "g+y", "kh+r", "g+r"),
	"'":      setOf("kh", "g", "ch", "j", "th", "d", "ph", "b", "tsh", "dz", "kh+y", "g+y", "ph+y", "b+y", "kh+r", "g+r", "d+r", "ph+r", "b+r"),
	"‘": setOf("kh", "g", "ch", "j", "th", "d", "ph", "b", "tsh", "dz", "kh+y", "g+y", "ph+y", "b+y", "kh+r", "g+r", "d+r", "ph+r", "b+r"),
	"’": setOf("kh", "g", "ch", "j", "th", "d", "ph", "b", "tsh", "dz", "kh+y", "g+y", "ph+y", "b+y", "kh+r", "g+r", "d+r", "ph+r", "b+r"),
}

// suffixes is the set of letters legal in suffix position; a handful of
// Sanskrit letters are included because they occur often in suffix
// position in Sanskrit loanwords.
var suffixes = setOf("'", "‘", "’", "g", "ng", "d", "n", "b", "m",
	"r", "l", "s", "N", "T", "-n", "-t")

// suff2 maps a secondary suffix to the set of primary suffixes before
// which it may occur.
var suff2 = map[string]map[string]bool{
	"s": setOf("g", "ng", "b", "m"),
	"d": setOf("n", "r", "l"),
}

// ambiguousKey gives the root-consonant index (0, 1, or 2) for
// structurally ambiguous 3-consonant syllables.
var ambiguousKey = map[string]int{
	"dgs": 1, "dms": 1, "'gs": 1, "mngs": 0, "bgs": 0, "dbs": 1,
}

// ambiguousWylie gives the canonical disambiguated spelling for the same
// syllables.
var ambiguousWylie = map[string]string{
	"dgs": "dgas", "dms": "dmas", "'gs": "'gas",
	"mngs": "mangs", "bgs": "bags", "dbs": "dbas",
}

// longVowelMap fuses a bare A followed by a short Sanskrit vowel sign into
// its long form.
var longVowelMap = map[string]string{"i": "I", "u": "U", "-i": "-I"}

// caretShortcut collapses a single consonant plus a stray tsa-phru (^)
// into the informal f/v spelling.
var caretShortcut = map[string]string{"ph": "f", "b": "v"}

// tibStacks is the set of "+"-joined consonant stacks that render without
// explicit "+" separators in EWTS output.
var tibStacks = setOf(
	"b+l", "b+r", "b+y", "c+w", "d+r", "d+r+w", "d+w", "dz+r", "g+l", "g+r",
	"g+r+w", "g+w", "g+y", "h+r", "h+w", "k+l", "k+r", "k+w", "k+y", "kh+r",
	"kh+w", "kh+y", "l+b", "l+c", "l+d", "l+g", "l+h", "l+j", "l+k", "l+ng",
	"l+p", "l+t", "l+w", "m+r", "m+y", "n+r", "ny+w", "p+r", "p+y", "ph+r",
	"ph+y", "ph+y+w", "r+b", "r+d", "r+dz", "r+g", "r+g+w", "r+g+y", "r+j",
	"r+k", "r+k+y", "r+l", "r+m", "r+m+y", "r+n", "r+ng", "r+ny", "r+t",
	"r+ts", "r+ts+w", "r+w", "s+b", "s+b+r", "s+b+y", "s+d", "s+g", "s+g+r",
	"s+g+y", "s+k", "s+k+r", "s+k+y", "s+l", "s+m", "s+m+r", "s+m+y", "s+n",
	"s+n+r", "s+ng", "s+ny", "s+p", "s+p+r", "s+p+y", "s+r", "s+t", "s+ts",
	"s+w", "sh+r", "sh+w", "t+r", "t+w", "th+r", "ts+w", "tsh+w", "z+l",
	"z+w", "zh+w",
)

// tokensStart accelerates the tokenizer: for each rune that starts at
// least one multi-character EWTS token, the max length of any token
// starting with it.
var tokensStart = map[rune]int{
	'S': 2, '/': 2, 'd': 4, 'g': 3, 'b': 3, 'D': 3, 'z': 2, '~': 3, '-': 4,
	'T': 2, 'a': 2, 'k': 2, 't': 3, 's': 2, 'c': 2, 'n': 2, 'p': 2, '\r': 2,
}

// multiCharTokens is the set of EWTS tokens longer than one character.
var multiCharTokens = setOf(
	"-d+h", "dz+h", "-dh", "-sh", "-th", "D+h", "b+h", "d+h", "dzh", "g+h",
	"tsh", "~M`", "-I", "-d", "-i", "-n", "-t", "//", "Dh", "Sh", "Th",
	"ai", "au", "bh", "ch", "dh", "dz", "gh", "kh", "ng", "ny", "ph", "sh",
	"th", "ts", "zh", "~M", "~X", "\r\n",
)

// Reverse maps: Unicode codepoint -> EWTS token, used by the
// Unicode-to-EWTS direction.

var topByCodepoint = map[rune]string{
	0x0f40: "k", 0x0f41: "kh", 0x0f42: "g", 0x0f43: "g+h", 0x0f44: "ng",
	0x0f45: "c", 0x0f46: "ch", 0x0f47: "j", 0x0f49: "ny",
	0x0f4a: "T", 0x0f4b: "Th", 0x0f4c: "D", 0x0f4d: "D+h", 0x0f4e: "N",
	0x0f4f: "t", 0x0f50: "th", 0x0f51: "d", 0x0f52: "d+h", 0x0f53: "n",
	0x0f54: "p", 0x0f55: "ph", 0x0f56: "b", 0x0f57: "b+h", 0x0f58: "m",
	0x0f59: "ts", 0x0f5a: "tsh", 0x0f5b: "dz", 0x0f5c: "dz+h",
	0x0f5d: "w", 0x0f5e: "zh", 0x0f5f: "z", 0x0f60: "'",
	0x0f61: "y", 0x0f62: "r", 0x0f63: "l",
	0x0f64: "sh", 0x0f65: "Sh", 0x0f66: "s", 0x0f67: "h",
	0x0f68: "a", 0x0f69: "k+Sh", 0x0f6a: "R",
}

var subjoinedByCodepoint = map[rune]string{
	0x0f90: "k", 0x0f91: "kh", 0x0f92: "g", 0x0f93: "g+h", 0x0f94: "ng",
	0x0f95: "c", 0x0f96: "ch", 0x0f97: "j", 0x0f99: "ny",
	0x0f9a: "T", 0x0f9b: "Th", 0x0f9c: "D", 0x0f9d: "D+h", 0x0f9e: "N",
	0x0f9f: "t", 0x0fa0: "th", 0x0fa1: "d", 0x0fa2: "d+h", 0x0fa3: "n",
	0x0fa4: "p", 0x0fa5: "ph", 0x0fa6: "b", 0x0fa7: "b+h", 0x0fa8: "m",
	0x0fa9: "ts", 0x0faa: "tsh", 0x0fab: "dz", 0x0fac: "dz+h",
	0x0fad: "w", 0x0fae: "zh", 0x0faf: "z", 0x0fb0: "'",
	0x0fb1: "y", 0x0fb2: "r", 0x0fb3: "l",
	0x0fb4: "sh", 0x0fb5: "Sh", 0x0fb6: "s", 0x0fb7: "h", 0x0fb8: "a",
	0x0fb9: "k+Sh", 0x0fba: "W", 0x0fbb: "Y", 0x0fbc: "R",
}

var vowelByCodepoint = map[rune]string{
	0x0f71: "A", 0x0f72: "i", 0x0f73: "I", 0x0f74: "u", 0x0f75: "U",
	0x0f7a: "e", 0x0f7b: "ai", 0x0f7c: "o", 0x0f7d: "au", 0x0f80: "-i",
}

var finalByCodepoint = map[rune]string{
	0x0f7e: "M", 0x0f82: "~M`", 0x0f83: "~M",
	0x0f37: "X", 0x0f35: "~X",
	0x0f39: "^", 0x0f7f: "H", 0x0f84: "?",
}

var finalClassByCodepoint = map[rune]string{
	0x0f7e: "M", 0x0f82: "M", 0x0f83: "M",
	0x0f37: "X", 0x0f35: "X",
	0x0f39: "^", 0x0f7f: "H", 0x0f84: "?",
}

var otherByCodepoint = map[rune]string{
	' ': "_",
	0x0f04: "@", 0x0f05: "#", 0x0f06: "$", 0x0f07: "%", 0x0f08: "!",
	0x0f0b: " ", 0x0f0c: "*", 0x0f0d: "/", 0x0f0e: "//", 0x0f0f: ";",
	0x0f11: "|", 0x0f14: ":",
	0x0f20: "0", 0x0f21: "1", 0x0f22: "2", 0x0f23: "3", 0x0f24: "4",
	0x0f25: "5", 0x0f26: "6", 0x0f27: "7", 0x0f28: "8", 0x0f29: "9",
	0x0f34: "=", 0x0f3a: "<", 0x0f3b: ">", 0x0f3c: "(", 0x0f3d: ")",
}

// precomposedExpansions are the pre-composed Sanskrit-vowel codepoints
// expanded before Unicode-to-EWTS decomposition runs (spec §6).
var precomposedExpansions = []struct{ from, to string }{
	{"\u0f76", "\u0fb2\u0f80"},
	{"\u0f77", "\u0fb2\u0f71\u0f80"},
	{"\u0f78", "\u0fb3\u0f80"},
	{"\u0f79", "\u0fb3\u0f71\u0f80"},
	{"\u0f81", "\u0f71\u0f80"},
	{"\u0f00", "\u0f68\u0f7c\u0f7e"},
}
