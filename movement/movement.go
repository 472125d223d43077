// Package movement implements MovementEngine: heading application, the
// per-regime velocity update (ground/air/water/lava/elytra/ladder), the
// ladder predicate and the top-level per-tick SimulatePlayer entry point.
// Grounded on the reference simulator's travel.go/glide.go/context.go
// family and the secondary example client's physics.tick(), rewritten
// against this module's float64 Entity/World types.
package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/tickforge/voxelphys/attribute"
	"github.com/tickforge/voxelphys/catalogue"
	"github.com/tickforge/voxelphys/collision"
	"github.com/tickforge/voxelphys/entity"
	"github.com/tickforge/voxelphys/feature"
	"github.com/tickforge/voxelphys/game"
	"github.com/tickforge/voxelphys/omath"
	"github.com/tickforge/voxelphys/world"
)

var sprintModifierUUID = uuid.MustParse(game.SprintModifierUUID)

// ApplyHeading rotates (strafe, forward) by the entity's yaw and adds the
// result to velocity, scaled so the combined input never exceeds
// multiplier. yaw' = pi - entity.yaw matches the reference client's
// convention of yaw=0 facing -Z.
func ApplyHeading(e *entity.Entity, strafe, forward, multiplier float64) {
	speed := math.Sqrt(strafe*strafe + forward*forward)
	if speed < 0.01 {
		return
	}
	scale := multiplier / math.Max(speed, 1)
	strafe *= scale
	forward *= scale

	yawP := math.Pi - e.Yaw
	e.Vel[0] -= strafe*math.Cos(yawP) + forward*math.Sin(yawP)
	e.Vel[2] += forward*math.Cos(yawP) - strafe*math.Sin(yawP)
}

// IsOnLadder reports whether the block at pos is a ladder, a vine, or (if
// the climableTrapdoor feature is enabled) an open trapdoor facing the
// same way as a ladder directly below it. A null block below never
// derefs; it is simply "not a ladder", per the reference's observed
// behavior.
func IsOnLadder(w world.World, cat *catalogue.Catalogue, fs *feature.FeatureSet, pos mgl64.Vec3) bool {
	bx, by, bz := int(math.Floor(pos.X())), int(math.Floor(pos.Y())), int(math.Floor(pos.Z()))
	b := w.GetBlock(bx, by, bz)
	if b == nil {
		return false
	}
	name := b.Name()
	if name == cat.Ladder || name == cat.Vine {
		return true
	}
	if !fs.Enabled("climableTrapdoor") || !cat.TrapdoorIDs[name] {
		return false
	}
	below := w.GetBlock(bx, by-1, bz)
	if below == nil {
		return false
	}
	if below.Name() != cat.Ladder {
		return false
	}
	props, belowProps := b.Properties(), below.Properties()
	return props.Open && props.Facing == belowProps.Facing
}

// MoveEntityWithHeading dispatches on the entity's current regime (liquid,
// elytra, or normal ground/air) and advances it by one tick of horizontal
// heading input.
func MoveEntityWithHeading(e *entity.Entity, w world.World, cat *catalogue.Catalogue, fs *feature.FeatureSet, strafe, forward float64) {
	switch {
	case e.IsInWater || e.IsInLava:
		moveLiquid(e, w, cat, fs, strafe, forward)
	case e.ElytraFlying:
		moveElytra(e, w, cat, fs)
	default:
		moveNormal(e, w, cat, fs, strafe, forward)
	}
}

func gravityMultiplier(e *entity.Entity) float64 {
	if e.Vel.Y() <= 0 && e.SlowFalling > 0 {
		return game.SlowFallingGravMult
	}
	return 1
}

func moveLiquid(e *entity.Entity, w world.World, cat *catalogue.Catalogue, fs *feature.FeatureSet, strafe, forward float64) {
	lava := e.IsInLava
	inertia := game.WaterInertia
	if lava {
		inertia = game.LavaInertia
	}
	accel := game.LiquidAcceleration

	if !lava {
		s := float64(e.DepthStrider)
		if s > 3 {
			s = 3
		}
		if !e.OnGround {
			s /= 2
		}
		inertia += (0.546 - inertia) * s / 3
		accel += (0.7 - accel) * s / 3
		if e.DolphinsGrace > 0 {
			inertia = 0.96
		}
	}

	ApplyHeading(e, strafe, forward, accel)

	startY := e.Pos.Y()
	collision.MoveEntity(e, w, cat, fs.Enabled("velocityBlocksOnCollision"), fs.Enabled("velocityBlocksOnTop"), e.Vel.X(), e.Vel.Y(), e.Vel.Z())

	liquidGravity := cat.LiquidGravity.Water
	if lava {
		liquidGravity = cat.LiquidGravity.Lava
	}
	e.Vel[1] *= inertia - liquidGravity
	e.Vel[0] *= inertia
	e.Vel[2] *= inertia

	if e.IsCollidedHorizontally {
		testDY := 0.6 + e.Vel.Y() - (e.Pos.Y() - startY)
		if !wouldCollide(w, e.Pos, e.Vel.X(), testDY, e.Vel.Z()) {
			e.Vel[1] = game.OutOfLiquidImpulse
		}
	}
}

func wouldCollide(w world.World, pos mgl64.Vec3, dx, dy, dz float64) bool {
	base := game.NewAABB(pos, game.PlayerHalfWidth, game.PlayerHeight)
	moved := base
	moved.Offset(dx, dy, dz)
	for _, b := range collision.GetSurroundingBBs(w, base.Extend(dx, dy, dz)) {
		if moved.Intersects(b) {
			return true
		}
	}
	return false
}

func moveElytra(e *entity.Entity, w world.World, cat *catalogue.Catalogue, fs *feature.FeatureSet) {
	look := omath.DirectionVectorFromValues(e.Yaw, e.Pitch)
	lookX, lookZ := look.X(), look.Z()

	vx, vy, vz := e.Vel.X(), e.Vel.Y(), e.Vel.Z()
	h := math.Sqrt(vx*vx + vz*vz)
	c := math.Cos(e.Pitch)
	c2 := c * c
	gravMult := gravityMultiplier(e)

	vy += game.Gravity * gravMult * (-1 + 0.75*c2)

	if vy < 0 && c > 0 {
		m := vy * -0.1 * c2
		vx += lookX * m / c
		vy += m
		vz += lookZ * m / c
	}
	if e.Pitch < 0 && c > 0 {
		m := h * -math.Sin(e.Pitch) * 0.04
		vx -= lookX * m / c
		vy += m * 3.2
		vz -= lookZ * m / c
	}
	if c > 0 {
		vx += (lookX/c*h - vx) * 0.1
		vz += (lookZ/c*h - vz) * 0.1
	}

	vx *= 0.99
	vy *= 0.98
	vz *= 0.99

	e.Vel = mgl64.Vec3{vx, vy, vz}
	collision.MoveEntity(e, w, cat, fs.Enabled("velocityBlocksOnCollision"), fs.Enabled("velocityBlocksOnTop"), vx, vy, vz)

	if e.OnGround {
		e.ElytraFlying = false
	}
}

func moveNormal(e *entity.Entity, w world.World, cat *catalogue.Catalogue, fs *feature.FeatureSet, strafe, forward float64) {
	var inertia, accel float64

	if e.OnGround {
		bx, by, bz := int(math.Floor(e.Pos.X())), int(math.Floor(e.Pos.Y()))-1, int(math.Floor(e.Pos.Z()))
		slip := game.DefaultSlipperiness
		if b := w.GetBlock(bx, by, bz); b != nil {
			slip = cat.SlipperinessOf(b.Name())
		}
		inertia = slip * 0.91

		attrSpeed := effectiveMovementSpeed(e)
		accel = attrSpeed * 0.1627714 / (inertia * inertia * inertia)
		if accel < 0 {
			accel = 0
		}
	} else {
		inertia = game.AirborneInertia
		accel = game.AirborneAcceleration
		if e.Control.Sprint {
			accel += 0.02 * 0.3
		}
	}

	ApplyHeading(e, strafe, forward, accel)

	onLadder := IsOnLadder(w, cat, fs, e.Pos)
	if onLadder {
		e.Vel[0] = game.Clamp(e.Vel.X(), -game.LadderMaxSpeed, game.LadderMaxSpeed)
		e.Vel[2] = game.Clamp(e.Vel.Z(), -game.LadderMaxSpeed, game.LadderMaxSpeed)
		floor := -game.LadderMaxSpeed
		if e.Control.Sneak {
			floor = 0
		}
		if e.Vel.Y() < floor {
			e.Vel[1] = floor
		}
	}

	collision.MoveEntity(e, w, cat, fs.Enabled("velocityBlocksOnCollision"), fs.Enabled("velocityBlocksOnTop"), e.Vel.X(), e.Vel.Y(), e.Vel.Z())

	if IsOnLadder(w, cat, fs, e.Pos) && (e.IsCollidedHorizontally || (fs.Enabled("climbUsingJump") && e.Control.Jump)) {
		e.Vel[1] = game.LadderClimbSpeed
	}

	gravMult := 1.0
	if e.Levitation > 0 {
		e.Vel[1] += (0.05*float64(e.Levitation) - e.Vel.Y()) * 0.2
	} else {
		gravMult = gravityMultiplier(e)
		e.Vel[1] -= game.Gravity * gravMult
	}
	e.Vel[1] *= game.AirDrag
	e.Vel[0] *= inertia
	e.Vel[2] *= inertia
}

// effectiveMovementSpeed toggles the sprint attribute modifier idempotently
// (always removed first, then reinserted only while sprinting) and returns
// the resolved movementSpeed attribute value.
func effectiveMovementSpeed(e *entity.Entity) float64 {
	if e.Attributes == nil {
		e.Attributes = make(map[string]*attribute.Value)
	}
	v, ok := e.Attributes["movementSpeed"]
	if !ok {
		v = attribute.New(game.PlayerSpeed)
		e.Attributes["movementSpeed"] = v
	}
	attribute.DeleteModifier(v, sprintModifierUUID)
	if e.Control.Sprint {
		attribute.AddModifier(v, attribute.Modifier{
			UUID:      sprintModifierUUID,
			Amount:    0.3,
			Operation: attribute.OpMultiplyTotal,
		})
	}
	return attribute.GetValue(v)
}
