package lilylib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gekko3d/lilylib/particle"
	"github.com/gekko3d/lilylib/particledef"
	"github.com/gekko3d/lilylib/sprite"
	"github.com/go-gl/mathgl/mgl64"
)

// ParticleLibrary is the resource holding the loaded particle definitions.
type ParticleLibrary struct {
	Path    string
	Sheet   *sprite.Sheet
	Library *particledef.Library

	watcher *particledef.Watcher
}

// ParticleLibraryModule loads particle definitions from Path. With HotReload
// the file's directory is watched and the library replaced on change; a
// file that fails to parse keeps the previous library.
type ParticleLibraryModule struct {
	Path      string
	Sheet     *sprite.Sheet
	HotReload bool
}

func (mod ParticleLibraryModule) Install(app *App, cmd *Commands) {
	log := NamedLogger(app.Logger(), "particles")
	res := &ParticleLibrary{Path: mod.Path, Sheet: mod.Sheet}

	lib, err := particledef.Load(mod.Path)
	if err != nil {
		log.Errorf("%v", err)
		lib, _ = particledef.Parse(nil)
	} else {
		log.Infof("loaded %d definitions from %s", lib.Len(), mod.Path)
	}
	res.Library = lib

	if mod.HotReload {
		w, err := particledef.NewWatcher(dirOf(mod.Path))
		if err != nil {
			log.Warnf("hot reload disabled: %v", err)
		} else {
			res.watcher = w
		}
	}

	cmd.AddResources(res)
	app.UseSystem(System(particleLibraryReloadSystem).InStage(PreUpdate))
}

// Close stops watching for changes.
func (l *ParticleLibrary) Close() error {
	if l.watcher == nil {
		return nil
	}
	return l.watcher.Close()
}

// Reload re-reads the definition file. On error the current library stays.
func (l *ParticleLibrary) Reload() error {
	lib, err := particledef.Load(l.Path)
	if err != nil {
		return err
	}
	l.Library = lib
	return nil
}

func particleLibraryReloadSystem(lib *ParticleLibrary, cmd *Commands) {
	if lib.watcher == nil {
		return
	}
	log := NamedLogger(cmd.Logger(), "particles")
	for {
		select {
		case name, ok := <-lib.watcher.Events:
			if !ok {
				lib.watcher = nil
				return
			}
			if !sameFile(name, lib.Path) {
				continue
			}
			if err := lib.Reload(); err != nil {
				log.Errorf("reload: %v", err)
				continue
			}
			log.Infof("reloaded %d definitions", lib.Library.Len())
		case err, ok := <-lib.watcher.Errors:
			if ok {
				log.Warnf("watcher: %v", err)
			}
		default:
			return
		}
	}
}

// NewFlatParticle builds a particle from the named definition. A non-zero
// velocity makes it a moving particle.
func (l *ParticleLibrary) NewFlatParticle(name string, pos, velocity mgl64.Vec3) (*particle.FlatParticle, error) {
	def, err := l.Library.Get(name)
	if err != nil {
		return nil, err
	}
	fade, err := def.FadeFunc()
	if err != nil {
		return nil, err
	}

	var sprites particle.SpriteProvider
	if l.Sheet != nil {
		anim, err := l.Sheet.Animation(def.Frames)
		if err != nil {
			return nil, fmt.Errorf("particle %s: %w", name, err)
		}
		sprites = anim
	}

	var p *particle.FlatParticle
	if velocity == (mgl64.Vec3{}) {
		p = particle.NewFlatParticle(pos, def.MaxAge, sprites)
	} else {
		p = particle.NewMovingFlatParticle(pos, velocity, def.MaxAge, sprites)
	}
	p.Scale = def.Scale
	p.Color = def.Color
	p.Gravity = def.Gravity
	if def.VelocityMultiplier != 0 {
		p.VelocityMultiplier = def.VelocityMultiplier
	}
	p.Fade = fade
	if def.Spin != [3]float32{} {
		p.Behavior = particle.Spin(def.Spin[0], def.Spin[1], def.Spin[2])
	}
	return p, nil
}

// SpawnFlatParticle queues an entity carrying a new particle of the named
// kind.
func SpawnFlatParticle(cmd *Commands, lib *ParticleLibrary, name string, pos, velocity mgl64.Vec3) (EntityId, error) {
	p, err := lib.NewFlatParticle(name, pos, velocity)
	if err != nil {
		return 0, err
	}
	return cmd.AddEntity(FlatParticleComponent{Particle: p}), nil
}

func dirOf(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
