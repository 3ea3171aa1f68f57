package domain

import "time"

// Exchange records one keyword -> generated prompt pair.
type Exchange struct {
	Timestamp time.Time `json:"timestamp"`
	Keyword   string    `json:"keyword"`
	Prompt    string    `json:"prompt"`
	Model     string    `json:"model"`
}

// GenerationResult is the user-visible output of a run. NegativePrompt is a
// fixed constant, never derived from the API response.
type GenerationResult struct {
	Prompt         string
	NegativePrompt string
	Model          string
}

// ContextWindow is a bounded FIFO of recent exchanges sent to the model as
// conversational context. Oldest entries are evicted first once the cap is
// reached. Not safe for concurrent use; a run touches it from one goroutine.
type ContextWindow struct {
	cap     int
	entries []Exchange
}

// NewContextWindow builds a window holding at most cap exchanges.
// A non-positive cap disables retention entirely.
func NewContextWindow(cap int) *ContextWindow {
	return &ContextWindow{cap: cap}
}

// Push appends an exchange, evicting the oldest entry when full.
func (w *ContextWindow) Push(ex Exchange) {
	if w.cap <= 0 {
		return
	}
	w.entries = append(w.entries, ex)
	if len(w.entries) > w.cap {
		w.entries = w.entries[len(w.entries)-w.cap:]
	}
}

// Entries returns the retained exchanges, oldest first.
func (w *ContextWindow) Entries() []Exchange {
	out := make([]Exchange, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len reports the number of retained exchanges.
func (w *ContextWindow) Len() int {
	return len(w.entries)
}
