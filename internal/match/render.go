// internal/match/render.go
//
// Rendering contract. Render is a pure function of the surface state drawn
// onto a Canvas; it never mutates the surface. Back ends live elsewhere
// (PNG in internal/render, terminal in internal/tui).

package match

import "fmt"

// Canvas is the drawing target for Render.
type Canvas interface {
	// Clear wipes the whole surface and sizes it to width × height.
	Clear(width, height float64)
	StrokeLine(from, to Position)
	// FillText draws s centred on at.
	FillText(s string, at Position)
}

// Render clears c and draws bands, row dividers, words, committed lines and,
// while drawing, the rubber-band line. A round mapping with an unset target
// fails with ErrMissingWord before anything is drawn.
func (s *Surface) Render(c Canvas) error {
	if !s.mapping.Complete() {
		return fmt.Errorf("%w: cannot render unset target", ErrMissingWord)
	}
	l := s.layout
	h := s.Height()

	c.Clear(l.Width, h)
	c.StrokeLine(Position{X: l.SourceEdge()}, Position{X: l.SourceEdge(), Y: h})
	c.StrokeLine(Position{X: l.TargetEdge()}, Position{X: l.TargetEdge(), Y: h})

	for i, src := range s.mapping.keys {
		bottom := float64(i+1) * l.RowHeight
		c.StrokeLine(Position{Y: bottom}, Position{X: l.BandWidth, Y: bottom})
		c.StrokeLine(Position{X: l.TargetEdge(), Y: bottom}, Position{X: l.Width, Y: bottom})

		mid := l.RowCenter(i)
		c.FillText(src, Position{X: l.BandWidth / 2, Y: mid})
		c.FillText(s.mapping.values[src], Position{X: l.Width - l.BandWidth/2, Y: mid})
	}

	for _, ln := range s.lines {
		c.StrokeLine(ln.Start, ln.End)
	}
	if live, ok := s.LiveLine(); ok {
		c.StrokeLine(live.Start, live.End)
	}
	return nil
}
