// Package game holds the physics constants, the AABB primitive and a
// handful of float helpers shared by every other package in this module.
package game

import "github.com/chewxy/math32"

// Gravity and movement constants. Values and names follow the reference
// client exactly; see the component design for where each is consumed.
const (
	Gravity              = 0.08
	YawSpeed             = 3.0
	PitchSpeed           = 3.0
	PlayerSpeed          = 0.1
	SprintSpeed          = 0.3
	SneakSpeed           = 0.3
	StepHeight           = 0.6
	NegligeableVelocity  = 0.003
	SoulSandSpeed        = 0.4
	HoneyBlockSpeed      = 0.4
	HoneyBlockJumpSpeed  = 0.4
	LadderMaxSpeed       = 0.15
	LadderClimbSpeed     = 0.2
	PlayerHalfWidth      = 0.3
	PlayerHeight         = 1.8
	WaterInertia         = 0.8
	LavaInertia          = 0.5
	LiquidAcceleration   = 0.02
	AirborneInertia      = 0.91
	AirborneAcceleration = 0.02
	DefaultSlipperiness  = 0.6
	OutOfLiquidImpulse   = 0.3
	AutojumpCooldown     = 10
	SlowFallingGravMult  = 0.125

	SprintModifierUUID = "662a6b8d-da3e-4c1c-8813-96ea6097278d"
)

// AirDrag is 1-0.02 passed through a binary32 round-trip and widened back
// to binary64, exactly as the reference does it; results drift on long
// trajectories if this rounding is skipped.
var AirDrag = float64(float32(1 - 0.02))

// JumpBaseMotion is the jump base velocity, 0.42, rounded the same way.
var JumpBaseMotion = float64(math32.Float32frombits(math32.Float32bits(0.42)))

// BubbleDrag is a bubble-column drag set, keyed by whether the entity is at
// the surface (the block directly above is air) or fully submerged.
type BubbleDrag struct {
	Down, MaxDown, Up, MaxUp float64
}

var (
	BubbleSurface   = BubbleDrag{Down: 0.03, MaxDown: -0.9, Up: 0.1, MaxUp: 1.8}
	BubbleSubmerged = BubbleDrag{Down: 0.03, MaxDown: -0.3, Up: 0.06, MaxUp: 0.7}
)

// LiquidGravity resolves the version-gated gravity used while an entity is
// submerged. Construction of the catalogue fails if neither matches; see
// ErrNoLiquidGravity.
type LiquidGravity struct {
	Water, Lava float64
}

func IndependentLiquidGravity() LiquidGravity {
	return LiquidGravity{Water: 0.02, Lava: 0.02}
}

func ProportionalLiquidGravity() LiquidGravity {
	return LiquidGravity{Water: Gravity / 16, Lava: Gravity / 4}
}
