package generator

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "all classes",
			req:     Request{Length: 30, Selection: AllClasses()},
			wantErr: nil,
		},
		{
			name:    "digits only",
			req:     Request{Length: 10, Selection: Selection{Digits: true}},
			wantErr: nil,
		},
		{
			name:    "punctuation only",
			req:     Request{Length: 16, Selection: Selection{Punctuation: true}},
			wantErr: nil,
		},
		{
			name:    "single character",
			req:     Request{Length: 1, Selection: Selection{Lowercase: true}},
			wantErr: nil,
		},
		{
			name:    "zero length",
			req:     Request{Length: 0, Selection: AllClasses()},
			wantErr: ErrEmptyLength,
		},
		{
			name:    "zero length and no classes",
			req:     Request{Length: 0},
			wantErr: ErrEmptyLength,
		},
		{
			name:    "negative length",
			req:     Request{Length: -4, Selection: Selection{Digits: true}},
			wantErr: ErrEmptyLength,
		},
		{
			name:    "no classes selected",
			req:     Request{Length: 12},
			wantErr: ErrNoCharacterClassSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.req.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.req.Length)
			}
		})
	}
}

func TestGenerateMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		pattern string
	}{
		{
			name:    "digits length 10",
			req:     Request{Length: 10, Selection: Selection{Digits: true}},
			pattern: `^[0-9]{10}$`,
		},
		{
			name:    "letters length 8",
			req:     Request{Length: 8, Selection: Selection{Lowercase: true, Uppercase: true}},
			pattern: `^[A-Za-z]{8}$`,
		},
		{
			name:    "lowercase and digits length 20",
			req:     Request{Length: 20, Selection: Selection{Lowercase: true, Digits: true}},
			pattern: `^[a-z0-9]{20}$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			for i := 0; i < 50; i++ {
				password, err := Generate(tt.req)
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				if !re.MatchString(password) {
					t.Fatalf("Generate() = %q, want match for %s", password, tt.pattern)
				}
			}
		})
	}
}

func TestGenerateOnlyUsesSelectedAlphabet(t *testing.T) {
	for _, c := range Classes() {
		t.Run(c.String(), func(t *testing.T) {
			sel := Selection{}.With(c, true)
			password, err := Generate(Request{Length: 64, Selection: sel})
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(c.Charset(), ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), c.Charset())
				}
			}
		})
	}
}

func TestGenerateRepresentsEveryClass(t *testing.T) {
	seen := make(map[Class]bool)

	// 200 passwords of 30 characters; a class going unseen is vanishingly unlikely.
	for i := 0; i < 200; i++ {
		password, err := Generate(Request{Length: 30, Selection: AllClasses()})
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, c := range Classes() {
			if strings.ContainsAny(password, c.Charset()) {
				seen[c] = true
			}
		}
	}

	for _, c := range Classes() {
		if !seen[c] {
			t.Errorf("class %s never appeared", c)
		}
	}
}

func TestNewSeededIsDeterministic(t *testing.T) {
	req := Request{Length: 24, Selection: AllClasses()}

	a, err := NewSeeded(42).Generate(req)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	b, err := NewSeeded(42).Generate(req)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}

	c, err := NewSeeded(43).Generate(req)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a == c {
		t.Errorf("different seeds produced the same password %q", a)
	}
}

func TestGeneratorConcurrentUse(t *testing.T) {
	g := NewSeeded(7)
	req := Request{Length: 16, Selection: AllClasses()}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if p, err := g.Generate(req); err != nil || len(p) != 16 {
					t.Errorf("Generate() = %q, %v", p, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSelectionAlphabet(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{name: "empty", sel: Selection{}, want: ""},
		{name: "digits", sel: Selection{Digits: true}, want: "0123456789"},
		{name: "upper and digits keep fixed order", sel: Selection{Uppercase: true, Digits: true}, want: digitChars + uppercaseChars},
		{name: "all", sel: AllClasses(), want: digitChars + lowercaseChars + uppercaseChars + punctuationChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Alphabet(); got != tt.want {
				t.Errorf("Alphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPunctuationIsASCIIPunctuation(t *testing.T) {
	if len(punctuationChars) != 32 {
		t.Fatalf("punctuation has %d characters, want 32", len(punctuationChars))
	}
	for _, ch := range punctuationChars {
		if ch < '!' || ch > '~' || (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			t.Errorf("unexpected punctuation character %q", string(ch))
		}
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    Class
		wantErr bool
	}{
		{in: "digits", want: Digits},
		{in: "Lower", want: Lowercase},
		{in: " UPPERCASE ", want: Uppercase},
		{in: "punct", want: Punctuation},
		{in: "emoji", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClass(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownClass) {
					t.Errorf("ParseClass(%q) error = %v, want ErrUnknownClass", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClass(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClass(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSelectionWithAndEmpty(t *testing.T) {
	sel := Selection{}
	if !sel.Empty() {
		t.Fatal("zero Selection should be empty")
	}

	sel = sel.With(Punctuation, true)
	if sel.Empty() || !sel.Has(Punctuation) {
		t.Fatal("With(Punctuation, true) should enable punctuation")
	}

	sel = sel.With(Punctuation, false)
	if !sel.Empty() {
		t.Fatal("With(Punctuation, false) should disable punctuation")
	}
}
