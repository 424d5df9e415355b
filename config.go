package ewts

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the options that govern one conversion call. It is built
// once (typically via DefaultConfig or NewConfig) and is immutable
// thereafter; the same Config can be shared across goroutines and calls.
type Config struct {
	// Check enables orthographic warnings (invalid prefix/suffix/subscript
	// combinations, duplicate finals, ambiguous syllables, ...).
	Check bool

	// CheckStrict requires Check. No conversion step reads it: the checks
	// that compare against a whole consonant string (the root cluster
	// after a prefix or superscript, the stack above a subscript) run the
	// same way with or without it.
	CheckStrict bool

	// PrintWarnings, when true, echoes every warning to Logger as it
	// accrues, in addition to returning it in the warnings slice.
	PrintWarnings bool

	// FixSpacing collapses runs of input spaces to a single tsek, strips
	// leading whitespace, and strips leading spaces on lines after a
	// newline.
	FixSpacing bool

	// Logger receives warnings when PrintWarnings is set. The zero value
	// is replaced by a stderr console logger in DefaultConfig/NewConfig.
	Logger zerolog.Logger
}

// DefaultConfig returns the conversion defaults: (check, check_strict,
// print_warnings, fix_spacing) = (true, true, false, true).
func DefaultConfig() Config {
	cfg, err := NewConfig(true, true, false, true)
	if err != nil {
		// unreachable: check_strict=true always pairs with check=true above
		panic(err)
	}
	return cfg
}

// NewConfig builds a Config, validating that checkStrict is only set
// alongside check (mirroring the original implementation's constructor
// invariant, turned into an error instead of a raised exception).
func NewConfig(check, checkStrict, printWarnings, fixSpacing bool) (Config, error) {
	if checkStrict && !check {
		return Config{}, fmt.Errorf("ewts: check_strict requires check")
	}
	return Config{
		Check:         check,
		CheckStrict:   checkStrict,
		PrintWarnings: printWarnings,
		FixSpacing:    fixSpacing,
		Logger:        defaultLogger(),
	}, nil
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}
