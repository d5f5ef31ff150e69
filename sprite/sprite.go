// Package sprite slices atlas pages into UV rectangles and sequences them
// into animations for particles.
package sprite

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math/rand/v2"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrNoFrames   = errors.New("sprite: no frames")
	ErrFrameSize  = errors.New("sprite: invalid frame size")
	ErrFrameRange = errors.New("sprite: frame out of range")
)

// Sprite is a UV rectangle in normalized atlas coordinates.
type Sprite struct {
	MinU, MaxU float32
	MinV, MaxV float32
}

// Sheet is an atlas page cut into equally sized frames, numbered row-major
// from the top-left corner.
type Sheet struct {
	Width, Height  int
	FrameW, FrameH int
	columns, rows  int
}

func NewSheet(width, height, frameW, frameH int) (*Sheet, error) {
	if frameW <= 0 || frameH <= 0 || frameW > width || frameH > height {
		return nil, fmt.Errorf("%w: %dx%d frames on a %dx%d page", ErrFrameSize, frameW, frameH, width, height)
	}
	return &Sheet{
		Width:   width,
		Height:  height,
		FrameW:  frameW,
		FrameH:  frameH,
		columns: width / frameW,
		rows:    height / frameH,
	}, nil
}

// LoadSheet decodes an atlas page (PNG, GIF, JPEG, BMP, TIFF or WebP) and
// slices it into frames. Only the page dimensions are kept; pixel upload is
// left to the renderer.
func LoadSheet(r io.Reader, frameW, frameH int) (*Sheet, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode atlas page: %w", err)
	}
	sheet, err := NewSheet(cfg.Width, cfg.Height, frameW, frameH)
	if err != nil {
		return nil, fmt.Errorf("sprite: %s page: %w", format, err)
	}
	return sheet, nil
}

func (s *Sheet) Len() int {
	return s.columns * s.rows
}

// Frame returns the UVs of frame i.
func (s *Sheet) Frame(i int) (Sprite, error) {
	if i < 0 || i >= s.Len() {
		return Sprite{}, fmt.Errorf("%w: %d of %d", ErrFrameRange, i, s.Len())
	}
	col := i % s.columns
	row := i / s.columns
	w := float32(s.Width)
	h := float32(s.Height)
	return Sprite{
		MinU: float32(col*s.FrameW) / w,
		MaxU: float32((col+1)*s.FrameW) / w,
		MinV: float32(row*s.FrameH) / h,
		MaxV: float32((row+1)*s.FrameH) / h,
	}, nil
}

// Animation takes the first n frames of the sheet in order.
func (s *Sheet) Animation(n int) (*Animation, error) {
	if n <= 0 {
		return nil, ErrNoFrames
	}
	frames := make([]Sprite, n)
	for i := range frames {
		f, err := s.Frame(i)
		if err != nil {
			return nil, err
		}
		frames[i] = f
	}
	return NewAnimation(frames...)
}

// Animation is an ordered list of frames played once over a lifetime.
type Animation struct {
	frames []Sprite
}

func NewAnimation(frames ...Sprite) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return &Animation{frames: frames}, nil
}

func (a *Animation) Len() int {
	return len(a.frames)
}

// SpriteForAge spreads the frames evenly over maxAge ticks so that the
// last frame shows exactly at maxAge.
func (a *Animation) SpriteForAge(age, maxAge int) Sprite {
	if maxAge <= 0 {
		return a.frames[len(a.frames)-1]
	}
	i := age * (len(a.frames) - 1) / maxAge
	if i < 0 {
		i = 0
	}
	if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	return a.frames[i]
}

// Random picks any frame, for particles that hold a single sprite.
func (a *Animation) Random(r *rand.Rand) Sprite {
	return a.frames[r.IntN(len(a.frames))]
}
