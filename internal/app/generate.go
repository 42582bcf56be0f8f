package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/session"
)

func runGenerate(cmd GenerateCmd, deps Dependencies, limits config.Limits, log *slog.Logger) int {
	req, count, err := cmd.request(limits)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	gen, err := newGenerator(cmd.Seed)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	resp, err := service.NewGeneratorService(gen, limits).GenerateFor(req, count)
	if err != nil {
		if errors.Is(err, generator.ErrEmptyLength) || errors.Is(err, generator.ErrNoCharacterClassSelected) {
			fmt.Fprintln(deps.ErrOut, session.Message(err))
			return 1
		}
		return exitWithError(deps.ErrOut, err)
	}

	for _, pw := range resp.Passwords {
		fmt.Fprintln(deps.Out, pw)
	}
	log.Debug("passwords generated", "count", len(resp.Passwords), "length", resp.Length, "alphabet", resp.AlphabetSize)

	if cmd.Copy && len(resp.Passwords) > 0 {
		if err := deps.Clipboard.WriteAll(resp.Passwords[len(resp.Passwords)-1]); err != nil {
			log.Error("copy to clipboard failed", "error", err)
			fmt.Fprintln(deps.ErrOut, "Warning: could not copy to clipboard")
		} else {
			fmt.Fprintln(deps.ErrOut, "Copied to clipboard.")
		}
	}

	return 0
}

// request merges the preset (if any) with the flags. Flags add classes to the
// preset and override its length and count. An explicit -l 0 is kept so it
// reaches the empty-length check.
func (cmd GenerateCmd) request(limits config.Limits) (generator.Request, int, error) {
	var preset Preset
	if cmd.Preset != "" {
		p, err := LoadPreset(cmd.Preset)
		if err != nil {
			return generator.Request{}, 0, err
		}
		preset = p
	}

	sel, err := preset.Selection()
	if err != nil {
		return generator.Request{}, 0, err
	}
	if cmd.All {
		sel = generator.AllClasses()
	}
	sel.Digits = sel.Digits || cmd.Digits
	sel.Lowercase = sel.Lowercase || cmd.Lowercase
	sel.Uppercase = sel.Uppercase || cmd.Uppercase
	sel.Punctuation = sel.Punctuation || cmd.Punctuation

	length := limits.DefaultLength
	if preset.Length > 0 {
		length = preset.Length
	}
	if cmd.Length != nil {
		length = *cmd.Length
	}

	count := cmd.Count
	if preset.Count > 0 && count == 1 {
		count = preset.Count
	}

	return generator.Request{Length: length, Selection: sel}, count, nil
}
