// Package events holds an engine that publishes events, and a dashboard that listens to it.
package events

// Engine raises Idling when it has nothing to do and LowFuel when the tank runs low.
type Engine interface {
	AddIdling(handler func())
	RemoveIdling(handler func())
	AddLowFuel(handler LowFuelHandler)
	RemoveLowFuel(handler LowFuelHandler)
	Start() error
}

// LowFuelHandler is told the remaining fuel level and whether it is critical.
type LowFuelHandler func(level int, critical bool)

// Dashboard shows warnings raised by an engine.
type Dashboard struct {
	Warnings []string
	Idle     int

	engine  Engine
	onIdle  func()
	onLevel LowFuelHandler
}

// NewDashboard subscribes a dashboard to engine.
func NewDashboard(engine Engine) *Dashboard {
	dash := &Dashboard{engine: engine}
	dash.onIdle = func() { dash.Idle++ }
	dash.onLevel = func(level int, critical bool) {
		if critical {
			dash.Warnings = append(dash.Warnings, "CRITICAL")

			return
		}

		if level < 10 {
			dash.Warnings = append(dash.Warnings, "low")
		}
	}

	engine.AddIdling(dash.onIdle)
	engine.AddLowFuel(dash.onLevel)

	return dash
}

// Close unsubscribes the dashboard.
func (d *Dashboard) Close() {
	d.engine.RemoveIdling(d.onIdle)
	d.engine.RemoveLowFuel(d.onLevel)
}
