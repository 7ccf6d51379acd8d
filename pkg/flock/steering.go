package flock

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// The three steering rules below share the classic
// steer-toward-desired-velocity shape: build a desired velocity at
// cruise speed, subtract the current velocity, clamp the result to
// MaxForce. Each rule takes the neighbor set already filtered by its
// radius (SeparationRadius for Separate, NeighborRadius for the other
// two) and returns the zero vector when that set is empty or when the
// desired direction degenerates to zero length.

// Separate steers away from agents crowding the personal space.
// Closer neighbors push harder: each contribution is the unit vector
// away from the neighbor scaled by 1/distance.
func Separate(me *Agent, neighbors []*Agent, cfg *Config) geometry.Vector2D {
	var steer geometry.Vector2D
	count := 0

	for _, other := range neighbors {
		d := me.Pos.DistanceTo(other.Pos)
		if d <= 0 {
			continue
		}
		away := me.Pos.Sub(other.Pos).Normalize().Mul(1 / d)
		steer = steer.Add(away)
		count++
	}

	if count > 0 {
		steer = steer.Mul(1 / float64(count))
	}
	if steer.LenSqr() == 0 {
		return geometry.Vector2D{}
	}
	return steer.Normalize().Mul(cfg.MaxSpeed).Sub(me.Vel).Limit(cfg.MaxForce)
}

// Align steers toward the average velocity of the visible neighbors.
func Align(me *Agent, neighbors []*Agent, cfg *Config) geometry.Vector2D {
	var sum geometry.Vector2D
	for _, other := range neighbors {
		sum = sum.Add(other.Vel)
	}
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}

	avg := sum.Mul(1 / float64(len(neighbors)))
	desired := avg.Normalize()
	if desired.LenSqr() == 0 {
		// Neighbor velocities cancelled out exactly; no preferred
		// direction to match.
		return geometry.Vector2D{}
	}
	return desired.Mul(cfg.MaxSpeed).Sub(me.Vel).Limit(cfg.MaxForce)
}

// Cohere steers toward the local center of mass of the visible
// neighbors.
func Cohere(me *Agent, neighbors []*Agent, cfg *Config) geometry.Vector2D {
	var sum geometry.Vector2D
	for _, other := range neighbors {
		sum = sum.Add(other.Pos)
	}
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}

	center := sum.Mul(1 / float64(len(neighbors)))
	desired := center.Sub(me.Pos).Normalize()
	if desired.LenSqr() == 0 {
		// Already sitting on the center of mass.
		return geometry.Vector2D{}
	}
	return desired.Mul(cfg.MaxSpeed).Sub(me.Vel).Limit(cfg.MaxForce)
}
