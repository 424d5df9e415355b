// Command wylied exposes the ewts converter as a local D-Bus service, for
// desktop tools (editors, input methods) that want Wylie conversion
// without linking Go directly.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/username/go-ewts"
)

const (
	serviceName = "com.github.goewts.Converter"
	objectPath  = "/Converter"
)

// Converter is the D-Bus object exposing FromWylie/ToWylie.
type Converter struct {
	cfg    ewts.Config
	logger zerolog.Logger
}

// NewConverter creates a Converter using the supplied logger for
// structured call logging, leaving cfg's own PrintWarnings sink to emit
// through the same logger.
func NewConverter(logger zerolog.Logger) *Converter {
	cfg := ewts.DefaultConfig()
	cfg.Logger = logger
	return &Converter{cfg: cfg, logger: logger}
}

// FromWylie converts EWTS text to Tibetan Unicode.
func (c *Converter) FromWylie(input string) (string, []string, *dbus.Error) {
	start := time.Now()
	output, warnings := ewts.FromWylie(input, c.cfg)
	c.logger.Info().
		Str("direction", "from_wylie").
		Int("input_len", len(input)).
		Int("warnings", len(warnings)).
		Dur("elapsed", time.Since(start)).
		Msg("convert")
	return output, warnings, nil
}

// ToWylie converts Tibetan Unicode to EWTS.
func (c *Converter) ToWylie(input string, escape bool) (string, []string, *dbus.Error) {
	start := time.Now()
	output, warnings := ewts.ToWylie(input, escape, c.cfg)
	c.logger.Info().
		Str("direction", "to_wylie").
		Int("input_len", len(input)).
		Int("warnings", len(warnings)).
		Dur("elapsed", time.Since(start)).
		Msg("convert")
	return output, warnings, nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wylied: failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wylied: failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "wylied: name already taken, another instance may be running")
		os.Exit(1)
	}

	converter := NewConverter(logger)
	if err := conn.Export(converter, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "wylied: failed to export object:", err)
		os.Exit(1)
	}

	logger.Info().
		Str("service", serviceName).
		Str("object_path", objectPath).
		Msg("wylied listening")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info().Msg("wylied shutting down")
}
