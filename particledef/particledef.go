// Package particledef loads flat particle definitions from YAML.
package particledef

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidDefinition = errors.New("particledef: invalid definition")
	ErrUnknownParticle   = errors.New("particledef: unknown particle")
)

// Definition describes one kind of flat particle.
type Definition struct {
	ID   uuid.UUID `yaml:"-"`
	Name string    `yaml:"name"`

	MaxAge             int        `yaml:"max_age"`
	Scale              float32    `yaml:"scale"`
	Color              [4]float32 `yaml:"color"`
	Gravity            float32    `yaml:"gravity"`
	VelocityMultiplier float32    `yaml:"velocity_multiplier"`
	// Spin is radians per tick around X, Y and Z.
	Spin [3]float32 `yaml:"spin"`
	// Fade names a gween easing curve; empty keeps the linear fade.
	Fade   string `yaml:"fade"`
	Frames int    `yaml:"frames"`
}

type file struct {
	Particles []Definition `yaml:"particles"`
}

// Library is a set of definitions keyed by name.
type Library struct {
	defs map[string]Definition
}

// Load reads and validates a definition file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("particledef: load %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("particledef: %s: %w", path, err)
	}
	return lib, nil
}

func Parse(data []byte) (*Library, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	lib := &Library{defs: make(map[string]Definition, len(f.Particles))}
	for i, d := range f.Particles {
		d.applyDefaults()
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		if _, dup := lib.defs[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidDefinition, d.Name)
		}
		d.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(d.Name))
		lib.defs[d.Name] = d
	}
	return lib, nil
}

func (d *Definition) applyDefaults() {
	if d.Scale == 0 {
		d.Scale = 0.1
	}
	if d.Color == [4]float32{} {
		d.Color = [4]float32{1, 1, 1, 1}
	}
	if d.Frames == 0 {
		d.Frames = 1
	}
}

func (d Definition) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	case d.MaxAge <= 0:
		return fmt.Errorf("%w: %s: max_age must be positive", ErrInvalidDefinition, d.Name)
	case d.Scale < 0:
		return fmt.Errorf("%w: %s: negative scale", ErrInvalidDefinition, d.Name)
	case d.Frames < 0:
		return fmt.Errorf("%w: %s: negative frames", ErrInvalidDefinition, d.Name)
	}
	for _, c := range d.Color {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: %s: color components must be in [0,1]", ErrInvalidDefinition, d.Name)
		}
	}
	if _, err := d.FadeFunc(); err != nil {
		return err
	}
	return nil
}

// FadeFunc resolves Fade. A nil func means the linear fade.
func (d Definition) FadeFunc() (ease.TweenFunc, error) {
	if d.Fade == "" {
		return nil, nil
	}
	fn, ok := easings[d.Fade]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown fade %q", ErrInvalidDefinition, d.Name, d.Fade)
	}
	return fn, nil
}

func (l *Library) Get(name string) (Definition, error) {
	d, ok := l.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownParticle, name)
	}
	return d, nil
}

// Names returns the definition names sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for n := range l.defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (l *Library) Len() int {
	return len(l.defs)
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
}
