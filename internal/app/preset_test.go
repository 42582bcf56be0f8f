package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
)

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset([]byte("length: 16\nclasses: [Digits, lower, punct]\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, p.Length)

	sel, err := p.Selection()
	require.NoError(t, err)
	assert.Equal(t, generator.Selection{Digits: true, Lowercase: true, Punctuation: true}, sel)
}

func TestParsePresetEmpty(t *testing.T) {
	p, err := ParsePreset(nil)
	require.NoError(t, err)
	assert.Equal(t, Preset{}, p)
}

func TestParsePresetRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "size: 12\n"},
		{name: "unknown class", data: "classes: [emoji]\n"},
		{name: "negative length", data: "length: -1\n"},
		{name: "not yaml", data: "length: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePreset([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestGenerateCmdRequest(t *testing.T) {
	limits := config.DefaultLimits()

	req, count, err := GenerateCmd{Count: 1}.request(limits)
	require.NoError(t, err)
	assert.Equal(t, 6, req.Length)
	assert.True(t, req.Selection.Empty())
	assert.Equal(t, 1, count)

	length := 20
	req, count, err = GenerateCmd{All: true, Length: &length, Count: 4}.request(limits)
	require.NoError(t, err)
	assert.Equal(t, 20, req.Length)
	assert.Equal(t, generator.AllClasses(), req.Selection)
	assert.Equal(t, 4, count)
}

func TestGenerateCmdRequestKeepsExplicitZeroLength(t *testing.T) {
	zero := 0
	req, _, err := GenerateCmd{Digits: true, Length: &zero, Count: 1}.request(config.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, 0, req.Length)
}
