// internal/match/types.go
//
// Core type definitions for the matching surface.
// Defines:
//   - Position / Line: canvas pixel geometry.
//   - WordType: which band a hit landed in.
//   - Outcome: result of a pointer-up on the surface.
//   - Sentinel errors shared by the package.

package match

import "errors"

var (
	// ErrWordIndexOutOfBound aborts the current pointer event only.
	ErrWordIndexOutOfBound = errors.New("word index out of bound")
	// ErrMissingWord means a round mapping has an unset target where text is required.
	ErrMissingWord = errors.New("word missing")

	ErrEmptyRound    = errors.New("round has no words")
	ErrDuplicateWord = errors.New("duplicate word")
	ErrUnknownWord   = errors.New("unknown word")
)

// Position is a point in canvas pixel space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a committed connection between two anchors.
type Line struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// WordType identifies the band a coordinate resolved to.
type WordType string

const (
	WordNone   WordType = ""
	WordSource WordType = "source"
	WordTarget WordType = "target"
)

// Opposite returns the other band; WordNone stays WordNone.
func (t WordType) Opposite() WordType {
	switch t {
	case WordSource:
		return WordTarget
	case WordTarget:
		return WordSource
	}
	return WordNone
}

// Outcome reports what a pointer-up did to the surface.
type Outcome string

const (
	OutcomeIgnored          Outcome = "ignored"
	OutcomeStarted          Outcome = "started"
	OutcomeCommitted        Outcome = "committed"
	OutcomeRejectedSameType Outcome = "rejected_same_type"
	OutcomeRejectedPaired   Outcome = "rejected_paired"
)

// Rejected reports whether the outcome was a user-correctable no-op.
func (o Outcome) Rejected() bool {
	return o == OutcomeRejectedSameType || o == OutcomeRejectedPaired
}

// Hint is an optional message the host may show for a rejected attempt.
func (o Outcome) Hint() string {
	switch o {
	case OutcomeRejectedSameType:
		return "pick a word from the other column"
	case OutcomeRejectedPaired:
		return "that word is already paired"
	}
	return ""
}
