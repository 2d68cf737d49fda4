// internal/match/surface.go
//
// Surface is the interaction engine for one matching round.
// Responsibilities:
//   - Own the round's word mapping, the learner's answer, committed lines,
//     and the line-drawing state.
//   - Turn raw pointer events into state transitions:
//       Idle ──up on free word──▶ Drawing ──up on free opposite word──▶ Idle
//     Same-column picks and already-paired words are no-ops.
//   - Reset everything when a new round mapping arrives.
//
// A Surface is not safe for concurrent use; hosts serialise events.

package match

import "fmt"

// State is either Idle or Drawing.
type State interface{ isState() }

// Idle means no line is in progress.
type Idle struct{}

// Drawing means the first endpoint is chosen. Start is the snapped anchor of
// the pending word; LiveEnd is the raw pointer position, nil until the
// pointer has moved.
type Drawing struct {
	Pending Selection
	Start   Position
	LiveEnd *Position
}

func (Idle) isState()    {}
func (Drawing) isState() {}

// Selection is a word picked as one half of an in-progress pairing.
type Selection struct {
	Word string   `json:"word"`
	Type WordType `json:"type"`
	Row  int      `json:"row"`
}

// Surface holds all interaction state for the active round.
type Surface struct {
	layout  Layout
	mapping WordMapping
	answer  WordMapping
	lines   []Line
	state   State
}

// NewSurface validates the layout and resets onto mapping.
func NewSurface(layout Layout, mapping WordMapping) (*Surface, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	s := &Surface{layout: layout}
	if err := s.Reset(mapping); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a round: clears lines, pending selection and live end, and
// creates an all-unset answer keyed by mapping's source words. On error the
// surface is left untouched.
func (s *Surface) Reset(mapping WordMapping) error {
	if mapping.Len() == 0 {
		return ErrEmptyRound
	}
	if !mapping.Complete() {
		return fmt.Errorf("%w: round mapping has unset targets", ErrMissingWord)
	}
	// each target must be reachable by exactly one row
	seen := make(map[string]bool, mapping.Len())
	for _, k := range mapping.Keys() {
		tgt, _ := mapping.Get(k)
		if seen[tgt] {
			return fmt.Errorf("%w: target %q shown twice", ErrDuplicateWord, tgt)
		}
		seen[tgt] = true
	}
	s.mapping = mapping.Clone()
	s.answer = mapping.Unset()
	s.lines = nil
	s.state = Idle{}
	return nil
}

// PointerMove tracks the rubber-band end while drawing. It reports whether
// the surface needs a redraw.
func (s *Surface) PointerMove(x, y float64) bool {
	d, ok := s.state.(Drawing)
	if !ok {
		return false
	}
	d.LiveEnd = &Position{X: x, Y: y}
	s.state = d
	return true
}

// PointerUp runs hit-testing and applies the line-drawing transitions.
// An error aborts this event only; state is unchanged.
func (s *Surface) PointerUp(x, y float64) (Outcome, error) {
	hit, err := s.HitTest(x, y)
	if err != nil {
		return OutcomeIgnored, err
	}
	if !hit.Ok() {
		return OutcomeIgnored, nil
	}

	switch st := s.state.(type) {
	case Drawing:
		return s.complete(st, hit), nil
	default:
		if s.Selected(hit.Word, hit.Type) {
			return OutcomeRejectedPaired, nil
		}
		s.state = Drawing{
			Pending: Selection{Word: hit.Word, Type: hit.Type, Row: hit.Row},
			Start:   hit.Anchor,
		}
		return OutcomeStarted, nil
	}
}

// PointerDown behaves exactly like PointerUp; hosts may bind either.
func (s *Surface) PointerDown(x, y float64) (Outcome, error) { return s.PointerUp(x, y) }

func (s *Surface) complete(d Drawing, hit Hit) Outcome {
	if hit.Type != d.Pending.Type.Opposite() {
		return OutcomeRejectedSameType
	}
	src, tgt := d.Pending.Word, hit.Word
	if hit.Type == WordSource {
		src, tgt = hit.Word, d.Pending.Word
	}
	if s.Selected(src, WordSource) || s.Selected(tgt, WordTarget) {
		return OutcomeRejectedPaired
	}
	_ = s.answer.Set(src, tgt)
	s.lines = append(s.lines, Line{Start: d.Start, End: hit.Anchor})
	s.state = Idle{}
	return OutcomeCommitted
}

// Selected reports whether word is already committed: a source word once its
// answer entry is set, a target word once it is any entry's value.
func (s *Surface) Selected(word string, t WordType) bool {
	switch t {
	case WordSource:
		_, ok := s.answer.Get(word)
		return ok
	case WordTarget:
		return s.answer.HasTarget(word)
	}
	return false
}

// State returns the current line-drawing state.
func (s *Surface) State() State { return s.state }

// Pending returns the pending selection while drawing.
func (s *Surface) Pending() (Selection, bool) {
	d, ok := s.state.(Drawing)
	return d.Pending, ok
}

// LiveLine returns the rubber-band segment, if the pointer has moved since
// the first endpoint was chosen.
func (s *Surface) LiveLine() (Line, bool) {
	d, ok := s.state.(Drawing)
	if !ok || d.LiveEnd == nil {
		return Line{}, false
	}
	return Line{Start: d.Start, End: *d.LiveEnd}, true
}

// Answer returns a copy of the learner's answer.
func (s *Surface) Answer() WordMapping { return s.answer.Clone() }

// Mapping returns a copy of the round mapping.
func (s *Surface) Mapping() WordMapping { return s.mapping.Clone() }

// Lines returns a copy of the committed lines in commit order.
func (s *Surface) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Layout returns the surface geometry.
func (s *Surface) Layout() Layout { return s.layout }

// Height is the canvas height for the current round.
func (s *Surface) Height() float64 { return s.layout.Height(s.mapping.Len()) }

// HitTest resolves a coordinate against the current round.
func (s *Surface) HitTest(x, y float64) (Hit, error) {
	return s.layout.HitTest(s.mapping, x, y)
}
