package ewts

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Check || !cfg.CheckStrict || cfg.PrintWarnings || !cfg.FixSpacing {
		t.Errorf("DefaultConfig() = %+v, want (true, true, false, true)", cfg)
	}
}

func TestNewConfig_RejectsStrictWithoutCheck(t *testing.T) {
	if _, err := NewConfig(false, true, false, true); err == nil {
		t.Error("expected an error when check_strict is set without check")
	}
}

func TestNewConfig_Valid(t *testing.T) {
	cfg, err := NewConfig(false, false, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Check || cfg.CheckStrict || !cfg.PrintWarnings || cfg.FixSpacing {
		t.Errorf("NewConfig produced %+v, want (false, false, true, false)", cfg)
	}
}
