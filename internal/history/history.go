// Package history keeps the keywords a session has analyzed.
package history

import (
	"fmt"

	"github.com/goccy/go-json"
)

// History is an ordered set of keywords. Insertion order is preserved and an
// exact duplicate is never added twice. The zero value is an empty history.
type History struct {
	items []string
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Append adds keyword to the end unless it is already present.
// Reports whether the history changed.
func (h *History) Append(keyword string) bool {
	if h.Contains(keyword) {
		return false
	}
	h.items = append(h.items, keyword)
	return true
}

// Contains reports whether keyword was already recorded.
func (h *History) Contains(keyword string) bool {
	for _, item := range h.items {
		if item == keyword {
			return true
		}
	}
	return false
}

// Clear empties the history.
func (h *History) Clear() {
	h.items = nil
}

// List returns a copy of the entries in insertion order.
func (h *History) List() []string {
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.items)
}

// Encode serializes the history for session storage.
func (h *History) Encode() (string, error) {
	data, err := json.Marshal(h.List())
	if err != nil {
		return "", fmt.Errorf("failed to encode history: %w", err)
	}
	return string(data), nil
}

// Decode restores a history produced by Encode. Duplicates in the payload are
// dropped so the ordered-set invariant holds even for tampered storage.
func Decode(raw string) (*History, error) {
	h := New()
	if raw == "" {
		return h, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	for _, item := range items {
		h.Append(item)
	}
	return h, nil
}
