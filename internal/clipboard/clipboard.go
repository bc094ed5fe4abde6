// Package clipboard copies generated CSS to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, for
// example on a headless Linux box without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System is the Copier backed by the operating system clipboard.
type System struct{}

// Copy implements Copier.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process Copier. It records the last copied text and
// fails with Err when set. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	last string
	n    int
	Err  error
}

// Copy implements Copier.
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.last = text
	m.n++
	return nil
}

// Last returns the most recently copied text.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Count returns how many copies succeeded.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
