// Package clipboard moves text to the operating system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not available on this system")

// Clipboard accepts text for the user to paste elsewhere.
type Clipboard interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard through xclip/xsel/wl-copy, pbcopy or the Win32 API.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard for headless runs and tests.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Text returns the last written value.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes counts WriteAll calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Detect returns the system clipboard when the platform supports one and an
// in-memory clipboard otherwise.
func Detect() Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}
