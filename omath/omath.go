// Package omath collects small floating-point helpers used by the
// movement engine that don't belong on the AABB type itself.
package omath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionVectorFromValues returns the look direction for yaw/pitch given
// in radians, used by the elytra glide formulas and the firework-rocket
// thrust.
func DirectionVectorFromValues(yaw, pitch float64) mgl64.Vec3 {
	y := -math.Sin(pitch)
	xz := math.Cos(pitch)
	x := -xz * math.Sin(yaw)
	z := xz * math.Cos(yaw)
	return mgl64.Vec3{x, y, z}.Normalize()
}
