package ewts

import "testing"

func TestWarnSink_AddFormatsLineNumber(t *testing.T) {
	w := newWarnSink(DefaultConfig())
	w.add(3, "something odd")
	if len(w.warnings) != 1 || w.warnings[0] != "line 3: something odd" {
		t.Errorf("got %v", w.warnings)
	}
}

func TestWarnSink_AddSyllableQuotesSource(t *testing.T) {
	w := newWarnSink(DefaultConfig())
	w.addSyllable(1, "dgs", "ambiguous")
	want := `line 1: "dgs": ambiguous`
	if len(w.warnings) != 1 || w.warnings[0] != want {
		t.Errorf("got %q, want %q", w.warnings[0], want)
	}
}

func TestWarnSink_PrintWarningsDoesNotPanic(t *testing.T) {
	cfg, err := NewConfig(true, false, true, true)
	if err != nil {
		t.Fatal(err)
	}
	w := newWarnSink(cfg)
	w.add(1, "logged too")
}
