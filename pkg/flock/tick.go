package flock

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Tick advances the whole flock by exactly one simulated step.
//
// The update runs in two phases so that every agent reacts to the
// pre-tick snapshot: first all accelerations are computed from the
// current positions and velocities, then all agents are integrated and
// wrapped. No agent ever sees another agent's already-updated state
// within the same tick, so the result is independent of slot order.
//
// Because velocity is renormalized to MaxSpeed before the move, the
// per-tick displacement is exactly MaxSpeed, which keeps the hard edge
// reset in wrap valid as long as MaxSpeed stays far below the world
// dimensions.
func (f *Flock) Tick(cfg *Config) {
	f.grid.Rebuild(f.Agents, cellSizeFor(cfg))

	// Phase 1: steering. Two neighbor queries per agent, one per
	// radius, then the weighted force sum.
	for _, a := range f.Agents {
		f.sepBuf = f.grid.Within(a.Pos, cfg.SeparationRadius, f.sepBuf[:0])
		f.neighborBuf = f.grid.Within(a.Pos, cfg.NeighborRadius, f.neighborBuf[:0])

		sep := Separate(a, f.sepBuf, cfg).Mul(cfg.SeparationWeight)
		ali := Align(a, f.neighborBuf, cfg).Mul(cfg.AlignmentWeight)
		coh := Cohere(a, f.neighborBuf, cfg).Mul(cfg.CohesionWeight)

		a.Acc = sep.Add(ali).Add(coh)
	}

	// Phase 2: integration and boundary handling.
	for _, a := range f.Agents {
		integrate(a, cfg)
		wrap(a, cfg)
	}
}

// integrate folds the accumulated acceleration into the velocity,
// renormalizes the velocity to exactly MaxSpeed (agents fly at
// constant speed, only direction changes), moves the agent, clears the
// accumulator for the next tick and recomputes the heading.
func integrate(a *Agent, cfg *Config) {
	a.Vel = a.Vel.Add(a.Acc)

	dir := a.Vel.Normalize()
	if dir.LenSqr() == 0 {
		// Acceleration cancelled the velocity exactly; keep flying in
		// the previous direction instead of stalling.
		dir = geometry.NewVectorPolar(1, a.Heading)
	}
	a.Vel = dir.Mul(cfg.MaxSpeed)

	a.Pos = a.Pos.Add(a.Vel)
	a.Acc = geometry.Vector2D{}
	a.Heading = a.Vel.Angle()
}

// wrap applies the toroidal boundary: a coordinate leaving one edge
// re-enters at the opposite edge. This is a hard reset, not a modulo;
// it assumes the per-tick displacement never exceeds a world
// dimension (see Tick). Velocity is left untouched.
func wrap(a *Agent, cfg *Config) {
	if a.Pos.X < 0 {
		a.Pos.X = cfg.WorldWidth
	}
	if a.Pos.X > cfg.WorldWidth {
		a.Pos.X = 0
	}
	if a.Pos.Y < 0 {
		a.Pos.Y = cfg.WorldHeight
	}
	if a.Pos.Y > cfg.WorldHeight {
		a.Pos.Y = 0
	}
}
