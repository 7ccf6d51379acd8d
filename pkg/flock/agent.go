package flock

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Agent is the kinematic state of a single boid. Agents carry no
// identity beyond their slot in the flock; the behavior lives in free
// functions over (agent, neighbors, config).
type Agent struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	// Acc accumulates the weighted steering forces during a tick and
	// is reset to zero by the integrator, so it is always zero at the
	// start of the next tick.
	Acc geometry.Vector2D
	// Heading is derived from Vel after every integration, never
	// mutated independently.
	Heading float64
}

// RenderState is the read-only view a renderer consumes: one position
// and heading per agent. The core has no opinion on how it is drawn.
type RenderState struct {
	Pos     geometry.Vector2D
	Heading float64
}

// Flock is an ordered, fixed-size population of agents. The agent
// slice never grows or shrinks after New.
type Flock struct {
	Agents []*Agent

	// scratch buffers reused across ticks to keep the hot loop
	// allocation-free
	grid        *Grid
	sepBuf      []*Agent
	neighborBuf []*Agent
}

// New builds a flock of cfg.NumBoids agents with positions uniformly
// sampled over the world rectangle and initial velocities drawn from a
// random heading at half cruise speed. The random source is injected
// so tests can seed it for deterministic runs.
func New(cfg *Config, rng *rand.Rand) *Flock {
	agents := make([]*Agent, cfg.NumBoids)
	for i := range agents {
		vel := geometry.NewVectorPolar(cfg.MaxSpeed/2, rng.Float64()*2*math.Pi)
		agents[i] = &Agent{
			Pos: geometry.Vector2D{
				X: rng.Float64() * cfg.WorldWidth,
				Y: rng.Float64() * cfg.WorldHeight,
			},
			Vel:     vel,
			Heading: vel.Angle(),
		}
	}
	return &Flock{
		Agents: agents,
		grid:   NewGrid(cellSizeFor(cfg)),
	}
}

// RenderStates exports the (position, heading) pairs of the whole
// flock in slot order, for consumption by a renderer after a tick
// completes.
func (f *Flock) RenderStates() []RenderState {
	states := make([]RenderState, len(f.Agents))
	for i, a := range f.Agents {
		states[i] = RenderState{Pos: a.Pos, Heading: a.Heading}
	}
	return states
}
