package lilylib

// LifetimeComponent removes its entity after a number of simulation ticks.
type LifetimeComponent struct {
	TicksLeft int
}

type LifecycleModule struct{}

func (mod LifecycleModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(lifetimeSystem).InStage(PostUpdate))
}

func lifetimeSystem(t *Time, cmd *Commands) {
	if t.TicksDue <= 0 {
		return
	}
	MakeQuery1[LifetimeComponent](cmd).Map(func(eid EntityId, lt *LifetimeComponent) bool {
		lt.TicksLeft -= t.TicksDue
		if lt.TicksLeft <= 0 {
			cmd.Logger().Debugf("lifetime over, removing entity %v", eid)
			cmd.RemoveEntity(eid)
		}
		return true
	})
}
