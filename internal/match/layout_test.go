package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTest(t *testing.T) {
	m := catDog(t)
	l := DefaultLayout()

	tests := []struct {
		name string
		x, y float64
		want Hit
	}{
		{"source row 0", 10, 10, Hit{Type: WordSource, Row: 0, Anchor: Position{200, 25}, Word: "cat"}},
		{"source band edge", 200, 99, Hit{Type: WordSource, Row: 1, Anchor: Position{200, 75}, Word: "dog"}},
		{"target row 0", 900, 49.9, Hit{Type: WordTarget, Row: 0, Anchor: Position{800, 25}, Word: "chat"}},
		{"target band edge", 800, 50, Hit{Type: WordTarget, Row: 1, Anchor: Position{800, 75}, Word: "chien"}},
		{"between bands", 500, 10, Hit{}},
		{"just right of source band", 200.5, 10, Hit{}},
		{"left of surface", -1, 10, Hit{}},
		{"right of surface", 1001, 10, Hit{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := l.HitTest(m, tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Type != WordNone, got.Ok())
		})
	}
}

func TestHitTestIdempotent(t *testing.T) {
	m := catDog(t)
	l := DefaultLayout()
	for _, c := range [][2]float64{{10, 10}, {900, 70}, {500, 30}} {
		a, errA := l.HitTest(m, c[0], c[1])
		b, errB := l.HitTest(m, c[0], c[1])
		assert.Equal(t, a, b)
		assert.Equal(t, errA, errB)
	}
}

func TestHitTestOutOfBound(t *testing.T) {
	m := catDog(t)
	l := DefaultLayout()

	_, err := l.HitTest(m, 10, 100)
	assert.ErrorIs(t, err, ErrWordIndexOutOfBound)
	_, err = l.HitTest(m, 900, -0.5)
	assert.ErrorIs(t, err, ErrWordIndexOutOfBound)

	// Between the bands nothing is looked up, so the row does not matter.
	h, err := l.HitTest(m, 500, 1000)
	require.NoError(t, err)
	assert.False(t, h.Ok())
}

func TestHitTestMissingTarget(t *testing.T) {
	m, err := UnsetMapping("cat")
	require.NoError(t, err)

	_, err = DefaultLayout().HitTest(m, 900, 10)
	assert.ErrorIs(t, err, ErrMissingWord)

	h, err := DefaultLayout().HitTest(m, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, "cat", h.Word)
}

func TestLayoutGeometry(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())
	assert.Equal(t, float64(600), l.Height(12))
	assert.Equal(t, float64(200), l.SourceEdge())
	assert.Equal(t, float64(800), l.TargetEdge())
	assert.Equal(t, float64(125), l.RowCenter(2))

	assert.Error(t, Layout{Width: 100, BandWidth: 10, RowHeight: 0}.Validate())
}
