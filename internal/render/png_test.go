package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmatch/internal/match"
)

func surface(t *testing.T) *match.Surface {
	t.Helper()
	m, err := match.NewWordMapping(match.Pair{Source: "cat", Target: "chat"}, match.Pair{Source: "dog", Target: "chien"})
	require.NoError(t, err)
	s, err := match.NewSurface(match.DefaultLayout(), m)
	require.NoError(t, err)
	return s
}

func TestSurfacePNG(t *testing.T) {
	s := surface(t)
	_, err := s.PointerUp(10, 10)
	require.NoError(t, err)
	_, err = s.PointerUp(900, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Surface(&buf, s))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// The committed line crosses the empty middle at y=25.
	r, g, b, _ := img.At(500, 25).RGBA()
	assert.Less(t, r+g+b, uint32(3*0xffff), "expected ink on the committed line")
	// Far from any line the middle stays white.
	r, g, b, _ = img.At(500, 70).RGBA()
	assert.Equal(t, uint32(3*0xffff), r+g+b)
}

func TestEncodeBeforeDraw(t *testing.T) {
	p, err := NewPNG()
	require.NoError(t, err)
	assert.Nil(t, p.Image())
	assert.Error(t, p.Encode(&bytes.Buffer{}))
}
