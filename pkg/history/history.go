// Package history provides a bounded log of past calculations. Stores are
// constructed explicitly by the caller and passed by handle; the package
// keeps no ambient state. Retained entries are capped, evicting oldest-first.
package history

import (
	"errors"
	"time"
)

// DefaultLimit is the number of entries retained when no cap is configured.
const DefaultLimit = 100

// ErrNonFiniteResult is returned by Push when the result is NaN or infinite;
// such values never enter the log.
var ErrNonFiniteResult = errors.New("history: result is not a finite number")

// Entry is one recorded calculation.
type Entry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Store is a bounded, ordered calculation log.
type Store interface {
	// Push appends a calculation and returns the stored entry, evicting the
	// oldest entry once the cap is reached.
	Push(expression string, result float64) (*Entry, error)

	// All returns the retained entries, oldest first.
	All() ([]*Entry, error)

	// Clear removes every entry.
	Clear() error

	// Count returns the number of retained entries.
	Count() (int, error)

	// Close releases any resources held by the store.
	Close() error
}
