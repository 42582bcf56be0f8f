package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrLengthOutOfRange = errors.New("password length out of range")
	ErrCountOutOfRange  = errors.New("password count out of range")
)

// GeneratorService applies request defaults and limits before calling the generator.
type GeneratorService struct {
	gen    *generator.Generator
	limits config.Limits
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *generator.Generator, limits config.Limits) *GeneratorService {
	return &GeneratorService{gen: gen, limits: limits}
}

// Limits returns the bounds enforced by the service.
func (s *GeneratorService) Limits() config.Limits {
	return s.limits
}

// Generate produces req.Count passwords. Omitted class flags default to enabled,
// an omitted length to the configured default, and a zero count to one.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	sel := generator.Selection{
		Digits:      boolOrDefault(req.Digits, true),
		Lowercase:   boolOrDefault(req.Lowercase, true),
		Uppercase:   boolOrDefault(req.Uppercase, true),
		Punctuation: boolOrDefault(req.Punctuation, true),
	}

	length := s.limits.DefaultLength
	if req.Length != nil {
		length = *req.Length
	}

	return s.GenerateFor(generator.Request{Length: length, Selection: sel}, req.Count)
}

// GenerateFromSettings produces count passwords using stored profile settings.
func (s *GeneratorService) GenerateFromSettings(st model.Settings, count int) (model.GenerateResponse, error) {
	return s.GenerateFor(generator.Request{Length: st.Length, Selection: selectionOf(st)}, count)
}

// GenerateFor checks req against the limits and produces count passwords.
// A zero count means one. A length of zero or less is ErrEmptyLength.
func (s *GeneratorService) GenerateFor(req generator.Request, count int) (model.GenerateResponse, error) {
	if req.Length <= 0 {
		return model.GenerateResponse{}, generator.ErrEmptyLength
	}
	if !s.limits.Contains(req.Length) {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrLengthOutOfRange, req.Length, s.limits.MinLength, s.limits.MaxLength)
	}

	if count == 0 {
		count = 1
	}
	if count < 0 || count > s.limits.MaxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d not in [1, %d]",
			ErrCountOutOfRange, count, s.limits.MaxCount)
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := s.gen.Generate(req)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, pw)
	}

	return model.GenerateResponse{
		Passwords:    passwords,
		Length:       req.Length,
		AlphabetSize: len(req.Selection.Alphabet()),
	}, nil
}

// Classes lists the available character classes.
func (s *GeneratorService) Classes() []model.ClassResponse {
	classes := generator.Classes()
	out := make([]model.ClassResponse, len(classes))
	for i, c := range classes {
		out[i] = model.ClassResponse{Name: c.String(), Charset: c.Charset()}
	}
	return out
}

func selectionOf(st model.Settings) generator.Selection {
	return generator.Selection{
		Digits:      st.Digits,
		Lowercase:   st.Lowercase,
		Uppercase:   st.Uppercase,
		Punctuation: st.Punctuation,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
