// Package generator builds passwords from a set of enabled character classes.
//
// The random source is math/rand/v2 and is not suitable for secrets that need
// cryptographic strength.
package generator

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	digitChars       = "0123456789"
	lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	ErrEmptyLength              = errors.New("empty password length")
	ErrNoCharacterClassSelected = errors.New("no character class selected")
	ErrUnknownClass             = errors.New("unknown character class")
)

// Class identifies one group of characters that can be switched on or off.
type Class int

const (
	Digits Class = iota
	Lowercase
	Uppercase
	Punctuation
)

var classNames = [...]string{
	Digits:      "digits",
	Lowercase:   "lowercase",
	Uppercase:   "uppercase",
	Punctuation: "punctuation",
}

var classCharsets = [...]string{
	Digits:      digitChars,
	Lowercase:   lowercaseChars,
	Uppercase:   uppercaseChars,
	Punctuation: punctuationChars,
}

var classAliases = map[string]Class{
	"digits":      Digits,
	"digit":       Digits,
	"numbers":     Digits,
	"lowercase":   Lowercase,
	"lower":       Lowercase,
	"uppercase":   Uppercase,
	"upper":       Uppercase,
	"punctuation": Punctuation,
	"punct":       Punctuation,
	"symbols":     Punctuation,
}

// Classes returns every class in alphabet order.
func Classes() []Class {
	return []Class{Digits, Lowercase, Uppercase, Punctuation}
}

// ParseClass resolves a class by name. Matching is case-insensitive and
// accepts a few short aliases ("lower", "punct", "numbers").
func ParseClass(name string) (Class, error) {
	c, ok := classAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrUnknownClass
	}
	return c, nil
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Charset returns the characters belonging to the class.
func (c Class) Charset() string {
	if c < 0 || int(c) >= len(classCharsets) {
		return ""
	}
	return classCharsets[c]
}

// Selection records which classes are enabled. The zero value enables nothing.
type Selection struct {
	Digits      bool
	Lowercase   bool
	Uppercase   bool
	Punctuation bool
}

// AllClasses returns a Selection with every class enabled.
func AllClasses() Selection {
	return Selection{Digits: true, Lowercase: true, Uppercase: true, Punctuation: true}
}

// Has reports whether class c is enabled.
func (s Selection) Has(c Class) bool {
	switch c {
	case Digits:
		return s.Digits
	case Lowercase:
		return s.Lowercase
	case Uppercase:
		return s.Uppercase
	case Punctuation:
		return s.Punctuation
	}
	return false
}

// With returns a copy of s with class c switched to on.
func (s Selection) With(c Class, on bool) Selection {
	switch c {
	case Digits:
		s.Digits = on
	case Lowercase:
		s.Lowercase = on
	case Uppercase:
		s.Uppercase = on
	case Punctuation:
		s.Punctuation = on
	}
	return s
}

// Enabled lists the enabled classes in alphabet order.
func (s Selection) Enabled() []Class {
	var out []Class
	for _, c := range Classes() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether no class is enabled.
func (s Selection) Empty() bool {
	return len(s.Enabled()) == 0
}

// Alphabet concatenates the charsets of the enabled classes.
func (s Selection) Alphabet() string {
	var sb strings.Builder
	for _, c := range s.Enabled() {
		sb.WriteString(c.Charset())
	}
	return sb.String()
}

// Request describes one password to generate.
type Request struct {
	Length    int
	Selection Selection
}

// Generator draws passwords from a random source. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator reading from src.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a Generator seeded from the runtime's random state.
func NewRandom() *Generator {
	return New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

var defaultGenerator = NewRandom()

// Generate produces a password using the package default generator.
func Generate(req Request) (string, error) {
	return defaultGenerator.Generate(req)
}

// Generate returns a string of exactly req.Length characters, each drawn
// uniformly from the alphabet of the enabled classes.
func (g *Generator) Generate(req Request) (string, error) {
	if req.Length <= 0 {
		return "", ErrEmptyLength
	}

	alphabet := req.Selection.Alphabet()
	if alphabet == "" {
		return "", ErrNoCharacterClassSelected
	}

	result := make([]byte, req.Length)

	g.mu.Lock()
	for i := range result {
		result[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	g.mu.Unlock()

	return string(result), nil
}
