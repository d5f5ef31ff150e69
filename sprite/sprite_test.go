package sprite

import (
	"bytes"
	"image"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSheet_RejectsBadFrames(t *testing.T) {
	_, err := NewSheet(64, 64, 0, 16)
	assert.ErrorIs(t, err, ErrFrameSize)

	_, err = NewSheet(64, 64, 128, 16)
	assert.ErrorIs(t, err, ErrFrameSize)
}

func TestSheet_FrameUVs(t *testing.T) {
	sheet, err := NewSheet(64, 32, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, 8, sheet.Len())

	f, err := sheet.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, Sprite{MinU: 0, MaxU: 0.25, MinV: 0, MaxV: 0.5}, f)

	f, err = sheet.Frame(5)
	require.NoError(t, err)
	assert.Equal(t, Sprite{MinU: 0.25, MaxU: 0.5, MinV: 0.5, MaxV: 1}, f)

	_, err = sheet.Frame(8)
	assert.ErrorIs(t, err, ErrFrameRange)
}

func TestLoadSheet_DecodesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 16))))

	sheet, err := LoadSheet(&buf, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, 32, sheet.Width)
	assert.Equal(t, 16, sheet.Height)
	assert.Equal(t, 8, sheet.Len())
}

func TestLoadSheet_Garbage(t *testing.T) {
	_, err := LoadSheet(bytes.NewReader([]byte("not an image")), 8, 8)
	assert.Error(t, err)
}

func TestAnimation_SpriteForAge(t *testing.T) {
	frames := []Sprite{{MinU: 0}, {MinU: 1}, {MinU: 2}, {MinU: 3}}
	anim, err := NewAnimation(frames...)
	require.NoError(t, err)

	assert.Equal(t, frames[0], anim.SpriteForAge(0, 30))
	assert.Equal(t, frames[0], anim.SpriteForAge(9, 30))
	assert.Equal(t, frames[1], anim.SpriteForAge(10, 30))
	assert.Equal(t, frames[3], anim.SpriteForAge(30, 30))
	assert.Equal(t, frames[3], anim.SpriteForAge(31, 30), "past the end clamps")
	assert.Equal(t, frames[3], anim.SpriteForAge(5, 0))
}

func TestAnimation_FromSheet(t *testing.T) {
	sheet, err := NewSheet(32, 32, 16, 16)
	require.NoError(t, err)

	anim, err := sheet.Animation(3)
	require.NoError(t, err)
	assert.Equal(t, 3, anim.Len())

	_, err = sheet.Animation(5)
	assert.ErrorIs(t, err, ErrFrameRange)

	_, err = sheet.Animation(0)
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestAnimation_Random(t *testing.T) {
	anim, err := NewAnimation(Sprite{MaxU: 1}, Sprite{MaxU: 2})
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		s := anim.Random(r)
		assert.Contains(t, []float32{1, 2}, s.MaxU)
	}
}
