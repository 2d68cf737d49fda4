// internal/match/layout.go
//
// Layout & hit-testing.
//
// The surface is two fixed-width vertical bands: source words on the left,
// target words on the right, each split into N rows of RowHeight. A pointer
// coordinate resolves to a word box (snapped to the inner band edge and the
// row centre) or to empty space between the bands.

package match

import (
	"fmt"
	"math"
)

const (
	DefaultWidth     = 1000
	DefaultBandWidth = 200
	DefaultRowHeight = 50
)

// Layout holds the fixed surface geometry. Height depends on the round size.
type Layout struct {
	Width     float64 `json:"width"`
	BandWidth float64 `json:"bandWidth"`
	RowHeight float64 `json:"rowHeight"`
}

// DefaultLayout matches a 1000px wide canvas with 200px bands and 50px rows.
func DefaultLayout() Layout {
	return Layout{Width: DefaultWidth, BandWidth: DefaultBandWidth, RowHeight: DefaultRowHeight}
}

// Validate rejects geometry where the bands would overlap or rows are empty.
func (l Layout) Validate() error {
	if l.RowHeight <= 0 || l.BandWidth <= 0 {
		return fmt.Errorf("layout: band width and row height must be positive")
	}
	if 2*l.BandWidth >= l.Width {
		return fmt.Errorf("layout: bands (%v each) do not fit in width %v", l.BandWidth, l.Width)
	}
	return nil
}

// Height returns the canvas height for n rows.
func (l Layout) Height(n int) float64 { return float64(n) * l.RowHeight }

// SourceEdge is the x of every source anchor.
func (l Layout) SourceEdge() float64 { return l.BandWidth }

// TargetEdge is the x of every target anchor.
func (l Layout) TargetEdge() float64 { return l.Width - l.BandWidth }

// RowCenter is the y of every anchor in row i.
func (l Layout) RowCenter(i int) float64 { return float64(i)*l.RowHeight + l.RowHeight/2 }

// Hit is the result of resolving a coordinate. Type is WordNone for empty space.
type Hit struct {
	Type   WordType `json:"type"`
	Row    int      `json:"row"`
	Anchor Position `json:"anchor"`
	Word   string   `json:"word"`
}

// Ok reports whether the coordinate landed on a word box.
func (h Hit) Ok() bool { return h.Type != WordNone }

// HitTest resolves (x, y) against mapping. It never mutates anything, so
// calling it twice with the same inputs gives the same answer.
//
// Errors:
//   - ErrWordIndexOutOfBound when y falls outside the N rows of a band.
//   - ErrMissingWord when the target band row has no word.
func (l Layout) HitTest(m WordMapping, x, y float64) (Hit, error) {
	var h Hit
	switch {
	case x < 0 || x > l.Width:
		return Hit{}, nil
	case x <= l.BandWidth:
		h.Type, h.Anchor.X = WordSource, l.SourceEdge()
	case x >= l.Width-l.BandWidth:
		h.Type, h.Anchor.X = WordTarget, l.TargetEdge()
	default:
		return Hit{}, nil
	}

	row := int(math.Floor(y / l.RowHeight))
	if row < 0 || row >= m.Len() {
		return Hit{}, fmt.Errorf("%w: row %d of %d", ErrWordIndexOutOfBound, row, m.Len())
	}
	h.Row = row
	h.Anchor.Y = l.RowCenter(row)

	if h.Type == WordSource {
		h.Word, _ = m.SourceAt(row)
		return h, nil
	}
	tgt, ok, _ := m.TargetAt(row)
	if !ok {
		return Hit{}, fmt.Errorf("%w: target in row %d", ErrMissingWord, row)
	}
	h.Word = tgt
	return h, nil
}
