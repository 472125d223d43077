// Package entity holds the plain, concrete per-tick state every other
// package in this module reads and mutates: position, velocity,
// orientation, collision/liquid flags, status-effect levels, equipment
// and control inputs. There is exactly one entity kind simulated here, so
// this is a struct, not an interface, per the reference design notes.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/attribute"
)

// Control mirrors the reference client's boolean input record. Strafe and
// ForwardAxis are derived, not stored directly: strafe = right - left,
// forwardAxis = forward - back, each scaled by 0.98 by the caller.
type Control struct {
	Forward, Back, Left, Right bool
	Jump, Sprint, Sneak        bool
}

// Strafe returns right-left as -1, 0 or 1.
func (c Control) Strafe() float64 {
	return b2f(c.Right) - b2f(c.Left)
}

// ForwardAxis returns forward-back as -1, 0 or 1.
func (c Control) ForwardAxis() float64 {
	return b2f(c.Forward) - b2f(c.Back)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Entity is the mutable per-tick state of a simulated humanoid.
type Entity struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	Yaw, Pitch float64

	OnGround                bool
	IsInWater               bool
	IsInLava                bool
	IsInWeb                 bool
	IsCollidedHorizontally  bool
	IsCollidedVertically    bool
	ElytraFlying            bool

	JumpTicks              int
	FireworkRocketDuration int
	JumpQueued             bool

	// Status-effect amplifiers: 0 = absent, else amplifier+1.
	JumpBoost     int
	Speed         int
	Slowness      int
	DolphinsGrace int
	SlowFalling   int
	Levitation    int

	DepthStrider   int
	ElytraEquipped bool

	Attributes map[string]*attribute.Value

	Control Control
}
