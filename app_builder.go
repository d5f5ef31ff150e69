package lilylib

import (
	"reflect"
)

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	ecs := MakeEcs()
	app := &App{
		stages:    defaultStages(),
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		ecs:       &ecs,
	}
	for _, s := range app.stages {
		app.systems[s.Name] = nil
	}
	return &AppBuilder{app: app}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)
	return b
}

// Build installs the modules in order and applies the entities they spawned.
func (b *AppBuilder) Build() *App {
	app := b.app
	commands := app.Commands()
	for _, module := range b.modules {
		module.Install(app, commands)
	}
	app.FlushCommands()
	return app
}
