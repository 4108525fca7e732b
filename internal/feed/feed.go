// Package feed contains a discovery feed which hands out candidates one at a time.
package feed

import (
	"github.com/sparkdate/spark/internal/entities"
)

// Feed is a cursor over a fetched sequence of candidates.
// It is not safe for concurrent use, Sessions serializes access to it.
type Feed struct {
	candidates []*entities.Candidate
	pos        int
}

// New returns a feed positioned at the first candidate.
func New(candidates []*entities.Candidate) *Feed {
	return &Feed{candidates: candidates}
}

// Current returns the current candidate or nil if the feed is exhausted.
func (f *Feed) Current() *entities.Candidate {
	if f.Exhausted() {
		return nil
	}
	return f.candidates[f.pos]
}

// Advance moves the cursor to the next candidate.
func (f *Feed) Advance() {
	if !f.Exhausted() {
		f.pos++
	}
}

// Len returns the length of the fetched sequence.
func (f *Feed) Len() int {
	return len(f.candidates)
}

// Remaining returns count of candidates left including the current one.
func (f *Feed) Remaining() int {
	return len(f.candidates) - f.pos
}

// Exhausted ...
func (f *Feed) Exhausted() bool {
	return f.pos >= len(f.candidates)
}
