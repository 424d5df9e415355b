package ewts

import "fmt"

// warnSink accumulates warnings for one conversion call, prefixing each
// with its 1-indexed line number and optionally echoing it through cfg's
// logger as it accrues (Config.PrintWarnings).
type warnSink struct {
	cfg      Config
	warnings []string
}

func newWarnSink(cfg Config) *warnSink {
	return &warnSink{cfg: cfg}
}

// add records a plain warning at the given line.
func (w *warnSink) add(line int, msg string) {
	w.emit(fmt.Sprintf("line %d: %s", line, msg))
}

// addSyllable records a tsekbar-analyzer warning, quoting the source
// substring that produced it.
func (w *warnSink) addSyllable(line int, syllable, msg string) {
	w.emit(fmt.Sprintf("line %d: %s: %s", line, quote(syllable), msg))
}

func (w *warnSink) emit(full string) {
	w.warnings = append(w.warnings, full)
	if w.cfg.PrintWarnings {
		w.cfg.Logger.Warn().Msg(full)
	}
}

// quote wraps s in double quotes without further escaping, matching the
// original implementation's literal string concatenation (Go's %q would
// backslash-escape a backslash already present in a raw \uXXXX token).
func quote(s string) string {
	return "\"" + s + "\""
}
