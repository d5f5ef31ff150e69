package particledef

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
particles:
  - name: ripple
    max_age: 40
    scale: 0.5
    color: [0.2, 0.4, 1, 1]
    spin: [0, 0.1, 0]
    fade: outQuad
    frames: 8
  - name: ash
    max_age: 12
    gravity: 0.5
    velocity_multiplier: 0.9
`

func TestParse(t *testing.T) {
	lib, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, []string{"ash", "ripple"}, lib.Names())

	ripple, err := lib.Get("ripple")
	require.NoError(t, err)
	assert.Equal(t, 40, ripple.MaxAge)
	assert.Equal(t, float32(0.5), ripple.Scale)
	assert.Equal(t, [3]float32{0, 0.1, 0}, ripple.Spin)
	assert.Equal(t, 8, ripple.Frames)
	fade, err := ripple.FadeFunc()
	require.NoError(t, err)
	assert.NotNil(t, fade)

	ash, err := lib.Get("ash")
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), ash.Scale, "default scale")
	assert.Equal(t, [4]float32{1, 1, 1, 1}, ash.Color, "default color")
	assert.Equal(t, 1, ash.Frames)
	fade, err = ash.FadeFunc()
	require.NoError(t, err)
	assert.Nil(t, fade)

	assert.NotEqual(t, ripple.ID, ash.ID)
}

func TestParse_StableIDs(t *testing.T) {
	a, err := Parse([]byte(sample))
	require.NoError(t, err)
	b, err := Parse([]byte(sample))
	require.NoError(t, err)

	da, _ := a.Get("ripple")
	db, _ := b.Get("ripple")
	assert.Equal(t, da.ID, db.ID)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing name":  "particles:\n  - max_age: 3\n",
		"zero max age":  "particles:\n  - name: a\n",
		"bad color":     "particles:\n  - name: a\n    max_age: 3\n    color: [2, 0, 0, 1]\n",
		"unknown fade":  "particles:\n  - name: a\n    max_age: 3\n    fade: wobble\n",
		"duplicate":     "particles:\n  - name: a\n    max_age: 3\n  - name: a\n    max_age: 4\n",
		"negative size": "particles:\n  - name: a\n    max_age: 3\n    scale: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}

	_, err := Parse([]byte("particles: {"))
	assert.Error(t, err)
}

func TestLibrary_GetUnknown(t *testing.T) {
	lib, err := Parse([]byte(sample))
	require.NoError(t, err)
	_, err = lib.Get("smoke")
	assert.ErrorIs(t, err, ErrUnknownParticle)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "particles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	lib, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsDefinitionFile(t *testing.T) {
	assert.True(t, IsDefinitionFile("a/b/particles.yaml"))
	assert.True(t, IsDefinitionFile("X.YML"))
	assert.False(t, IsDefinitionFile("atlas.png"))
}

func TestWatcher_ReportsChangedDefinitions(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "particles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the definition file")
	}
}

func TestWatcher_ReportsLastWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "particles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("particles:\n  - name: [\n"), 0o644))
	time.Sleep(40 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event after the final write")
	}
	lib, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected second event for %s", got)
	case <-time.After(3 * debounce):
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
