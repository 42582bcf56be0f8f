package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vaultpass/passgen/internal/generator"
)

// Preset is a saved starting point for generation:
//
//	length: 16
//	classes: [digits, lowercase, uppercase]
//	count: 3
type Preset struct {
	Length  int      `yaml:"length"`
	Classes []string `yaml:"classes"`
	Count   int      `yaml:"count"`
}

// LoadPreset reads and validates a YAML preset file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("reading preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset decodes a preset. Unknown keys and class names are rejected.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Preset{}, fmt.Errorf("parsing preset: %w", err)
	}
	if _, err := p.Selection(); err != nil {
		return Preset{}, err
	}
	if p.Length < 0 || p.Count < 0 {
		return Preset{}, errors.New("parsing preset: length and count must not be negative")
	}
	return p, nil
}

// Selection resolves the preset's class names.
func (p Preset) Selection() (generator.Selection, error) {
	var sel generator.Selection
	for _, name := range p.Classes {
		c, err := generator.ParseClass(name)
		if err != nil {
			return generator.Selection{}, fmt.Errorf("preset class %q: %w", name, err)
		}
		sel = sel.With(c, true)
	}
	return sel, nil
}
