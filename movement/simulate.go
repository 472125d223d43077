package movement

import (
	"math"

	"github.com/tickforge/voxelphys/catalogue"
	"github.com/tickforge/voxelphys/entity"
	"github.com/tickforge/voxelphys/feature"
	"github.com/tickforge/voxelphys/game"
	"github.com/tickforge/voxelphys/liquid"
	"github.com/tickforge/voxelphys/omath"
	"github.com/tickforge/voxelphys/world"
)

// SimulatePlayer advances e by one tick: liquid detection, the dead zone,
// jump handling, heading derivation, elytra gating, firework thrust, then
// dispatch to MoveEntityWithHeading. This is the single entry point a host
// calls once per tick per entity.
func SimulatePlayer(e *entity.Entity, w world.World, cat *catalogue.Catalogue, fs *feature.FeatureSet) {
	waterBB := game.NewAABB(e.Pos, game.PlayerHalfWidth, game.PlayerHeight).Contract(0.001, 0.401, 0.001)
	e.IsInWater = liquid.IsInWaterApplyCurrent(w, cat, waterBB, &e.Vel)

	lavaBB := game.NewAABB(e.Pos, game.PlayerHalfWidth, game.PlayerHeight).Contract(0.1, 0.4, 0.1)
	e.IsInLava = liquid.IsInLava(w, cat, lavaBB)

	deadZone(&e.Vel[0])
	deadZone(&e.Vel[1])
	deadZone(&e.Vel[2])

	applyJump(e, w, cat)

	strafe := e.Control.Strafe() * 0.98
	forward := e.Control.ForwardAxis() * 0.98
	if e.Control.Sneak {
		strafe *= game.SneakSpeed
		forward *= game.SneakSpeed
	}

	e.ElytraFlying = e.ElytraFlying && e.ElytraEquipped && !e.OnGround && e.Levitation == 0

	applyFireworkRocket(e)

	MoveEntityWithHeading(e, w, cat, fs, strafe, forward)
}

func deadZone(v *float64) {
	if math.Abs(*v) < game.NegligeableVelocity {
		*v = 0
	}
}

func applyJump(e *entity.Entity, w world.World, cat *catalogue.Catalogue) {
	if !e.Control.Jump && !e.JumpQueued {
		e.JumpTicks = 0
		return
	}

	if e.JumpTicks > 0 {
		e.JumpTicks--
	}

	switch {
	case e.IsInWater || e.IsInLava:
		e.Vel[1] += 0.04
	case e.OnGround && e.JumpTicks == 0:
		vy := game.JumpBaseMotion
		below := w.GetBlock(int(math.Floor(e.Pos.X())), int(math.Floor(e.Pos.Y()-0.5)), int(math.Floor(e.Pos.Z())))
		if below != nil && cat.HoneyBlock != "" && below.Name() == cat.HoneyBlock {
			vy *= game.HoneyBlockJumpSpeed
		}
		vy += 0.1 * float64(e.JumpBoost)
		e.Vel[1] = vy

		if e.Control.Sprint {
			yawP := math.Pi - e.Yaw
			e.Vel[0] += -math.Sin(yawP) * 0.2
			e.Vel[2] += math.Cos(yawP) * 0.2
		}
		e.JumpTicks = game.AutojumpCooldown
	}

	e.JumpQueued = false
}

func applyFireworkRocket(e *entity.Entity) {
	if e.FireworkRocketDuration > 0 && e.ElytraFlying {
		look := omath.DirectionVectorFromValues(e.Yaw, e.Pitch)
		e.Vel[0] += look.X()*0.1 + (look.X()*1.5-e.Vel.X())*0.5
		e.Vel[1] += look.Y()*0.1 + (look.Y()*1.5-e.Vel.Y())*0.5
		e.Vel[2] += look.Z()*0.1 + (look.Z()*1.5-e.Vel.Z())*0.5
		e.FireworkRocketDuration--
	} else if !e.ElytraFlying {
		e.FireworkRocketDuration = 0
	}
}
