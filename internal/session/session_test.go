package session

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
)

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no display") }

func newTestSession(t *testing.T, clip clipboard.Clipboard) (*Session, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(generator.NewSeeded(99), clip, config.DefaultLimits(), log), &logs
}

func TestNewSessionStartsLikeTheApp(t *testing.T) {
	s, _ := newTestSession(t, &clipboard.Memory{})

	assert.Equal(t, 6, s.Length())
	assert.True(t, s.Selection().Empty())
	assert.Empty(t, s.Field())
}

func TestSetLengthClamps(t *testing.T) {
	s, _ := newTestSession(t, &clipboard.Memory{})

	assert.Equal(t, 6, s.SetLength(2))
	assert.Equal(t, 18, s.SetLength(18))
	assert.Equal(t, 30, s.SetLength(99))
	assert.Equal(t, 30, s.Length())
}

func TestGenerateWithoutClasses(t *testing.T) {
	s, _ := newTestSession(t, &clipboard.Memory{})

	err := s.Generate()
	require.ErrorIs(t, err, generator.ErrNoCharacterClassSelected)
	assert.Equal(t, MsgNoClasses, Message(err))
	assert.Empty(t, s.Field())
}

func TestGenerateFillsField(t *testing.T) {
	s, logs := newTestSession(t, &clipboard.Memory{})
	s.SetClass(generator.Digits, true)
	s.SetLength(10)

	require.NoError(t, s.Generate())
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{10}$`), s.Field())
	assert.Contains(t, logs.String(), "password generated")
	assert.NotContains(t, logs.String(), s.Field())
}

func TestGenerateClearsPreviousResultOnError(t *testing.T) {
	s, _ := newTestSession(t, &clipboard.Memory{})
	s.SetClass(generator.Lowercase, true)
	require.NoError(t, s.Generate())
	require.NotEmpty(t, s.Field())

	s.Toggle(generator.Lowercase)
	require.Error(t, s.Generate())
	assert.Empty(t, s.Field())
}

func TestToggle(t *testing.T) {
	s, _ := newTestSession(t, &clipboard.Memory{})

	assert.True(t, s.Toggle(generator.Uppercase))
	assert.True(t, s.Selection().Uppercase)
	assert.False(t, s.Toggle(generator.Uppercase))
	assert.False(t, s.Selection().Uppercase)
}

func TestClearAndCopy(t *testing.T) {
	clip := &clipboard.Memory{}
	s, _ := newTestSession(t, clip)
	s.SetSelection(generator.AllClasses())

	require.NoError(t, s.Generate())
	pw := s.Field()

	assert.True(t, s.Copy())
	assert.Equal(t, pw, clip.Text())

	s.Clear()
	assert.Empty(t, s.Field())
	assert.True(t, s.Copy())
	assert.Equal(t, "", clip.Text())
	assert.Equal(t, 2, clip.Writes())
}

func TestCopyFailureIsLogged(t *testing.T) {
	s, logs := newTestSession(t, failingClipboard{})

	assert.False(t, s.Copy())
	assert.Contains(t, logs.String(), "copy to clipboard failed")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, MsgEmptyLength, Message(generator.ErrEmptyLength))
	assert.Equal(t, MsgNoClasses, Message(generator.ErrNoCharacterClassSelected))
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "ERROR. boom", Message(errors.New("boom")))
}

func TestZeroLengthLimitsReportEmptyLength(t *testing.T) {
	limits := config.Limits{DefaultLength: 0, MinLength: 0, MaxLength: 30, MaxCount: 1}
	s := New(generator.NewSeeded(1), &clipboard.Memory{}, limits, nil)
	s.SetSelection(generator.AllClasses())

	err := s.Generate()
	require.ErrorIs(t, err, generator.ErrEmptyLength)
	assert.Equal(t, MsgEmptyLength, Message(err))
}
