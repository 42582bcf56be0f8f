// Package session keeps the state behind one interactive password generator
// window: the length control, the class switches and the results field.
package session

import (
	"errors"
	"log/slog"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
)

const (
	MsgEmptyLength = "ERROR. Empty password length."
	MsgNoClasses   = "ERROR. Character switches are not used."
)

// Session is not safe for concurrent use; it belongs to one UI loop.
type Session struct {
	gen       *generator.Generator
	clip      clipboard.Clipboard
	limits    config.Limits
	log       *slog.Logger
	length    int
	selection generator.Selection
	field     string
}

// New starts a session at the default length with every switch off.
func New(gen *generator.Generator, clip clipboard.Clipboard, limits config.Limits, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		gen:    gen,
		clip:   clip,
		limits: limits,
		log:    log,
		length: limits.DefaultLength,
	}
}

// SetLength moves the length control, clamped to the configured bounds,
// and returns the value that was applied.
func (s *Session) SetLength(n int) int {
	s.length = s.limits.Clamp(n)
	return s.length
}

func (s *Session) Length() int { return s.length }

func (s *Session) Selection() generator.Selection { return s.selection }

// SetClass switches one class on or off.
func (s *Session) SetClass(c generator.Class, on bool) {
	s.selection = s.selection.With(c, on)
}

// Toggle flips one class and returns its new state.
func (s *Session) Toggle(c generator.Class) bool {
	on := !s.selection.Has(c)
	s.SetClass(c, on)
	return on
}

// SetSelection replaces every switch at once.
func (s *Session) SetSelection(sel generator.Selection) {
	s.selection = sel
}

// Field returns the contents of the results field.
func (s *Session) Field() string { return s.field }

// Generate clears the results field and fills it with a new password.
// Configuration errors are returned for display; the field stays empty.
// Anything else is logged and dropped.
func (s *Session) Generate() error {
	s.field = ""

	pw, err := s.gen.Generate(generator.Request{Length: s.length, Selection: s.selection})
	switch {
	case err == nil:
		s.field = pw
		s.log.Debug("password generated", "length", len(pw), "classes", len(s.selection.Enabled()))
		return nil
	case errors.Is(err, generator.ErrEmptyLength), errors.Is(err, generator.ErrNoCharacterClassSelected):
		return err
	default:
		s.log.Error("password generation failed", "error", err)
		return nil
	}
}

// Clear empties the results field.
func (s *Session) Clear() {
	s.field = ""
}

// Copy puts the results field on the clipboard verbatim. A failed write is
// logged and reported as false.
func (s *Session) Copy() bool {
	if err := s.clip.WriteAll(s.field); err != nil {
		s.log.Error("copy to clipboard failed", "error", err)
		return false
	}
	return true
}

// Message returns the text shown to the user for a generation error.
func Message(err error) string {
	switch {
	case errors.Is(err, generator.ErrEmptyLength):
		return MsgEmptyLength
	case errors.Is(err, generator.ErrNoCharacterClassSelected):
		return MsgNoClasses
	case err == nil:
		return ""
	default:
		return "ERROR. " + err.Error()
	}
}
