package movement

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/entity"
	"github.com/tickforge/voxelphys/feature"
	"github.com/tickforge/voxelphys/game"
)

func TestDeadZoneClampsNegligibleVelocity(t *testing.T) {
	v := 0.002
	deadZone(&v)
	if v != 0 {
		t.Fatalf("deadZone(0.002) = %v, want 0", v)
	}

	v2 := 0.5
	deadZone(&v2)
	if v2 != 0.5 {
		t.Fatalf("deadZone(0.5) = %v, want unchanged 0.5", v2)
	}
}

// S2: jumping from grass while on ground gives the base jump impulse.
func TestApplyJumpFromGround(t *testing.T) {
	w := newFakeWorld()
	cat := testCatalogue(t)

	e := &entity.Entity{OnGround: true}
	e.Control.Jump = true

	applyJump(e, w, cat)

	if !game.ApproxEq(e.Vel.Y(), game.JumpBaseMotion) {
		t.Fatalf("vel.y = %v, want %v (base jump motion)", e.Vel.Y(), game.JumpBaseMotion)
	}
	if e.JumpTicks != game.AutojumpCooldown {
		t.Fatalf("jumpTicks = %d, want %d", e.JumpTicks, game.AutojumpCooldown)
	}
	if e.JumpQueued {
		t.Fatal("jumpQueued should be cleared after processing")
	}
}

func TestApplyJumpInLiquidAddsSmallImpulse(t *testing.T) {
	w := newFakeWorld()
	cat := testCatalogue(t)

	e := &entity.Entity{IsInWater: true}
	e.Control.Jump = true
	applyJump(e, w, cat)

	if !game.ApproxEq(e.Vel.Y(), 0.04) {
		t.Fatalf("vel.y = %v, want 0.04 (liquid jump impulse)", e.Vel.Y())
	}
}

func TestApplyJumpNoopWithoutJumpInput(t *testing.T) {
	w := newFakeWorld()
	cat := testCatalogue(t)

	e := &entity.Entity{OnGround: true, JumpTicks: 5}
	applyJump(e, w, cat)

	if e.Vel.Y() != 0 {
		t.Fatalf("vel.y = %v, want 0 (no jump requested)", e.Vel.Y())
	}
	if e.JumpTicks != 0 {
		t.Fatalf("jumpTicks = %d, want reset to 0", e.JumpTicks)
	}
}

func TestApplyFireworkRocketClearsDurationWhenNotGliding(t *testing.T) {
	e := &entity.Entity{FireworkRocketDuration: 5, ElytraFlying: false}
	applyFireworkRocket(e)
	if e.FireworkRocketDuration != 0 {
		t.Fatalf("fireworkRocketDuration = %d, want 0 when not elytra flying", e.FireworkRocketDuration)
	}
}

func TestApplyFireworkRocketThrustsWhileGliding(t *testing.T) {
	e := &entity.Entity{FireworkRocketDuration: 3, ElytraFlying: true, Yaw: 0, Pitch: 0}
	before := e.Vel
	applyFireworkRocket(e)

	if e.Vel == before {
		t.Fatal("expected firework thrust to change velocity")
	}
	if e.FireworkRocketDuration != 2 {
		t.Fatalf("fireworkRocketDuration = %d, want 2 (decremented once)", e.FireworkRocketDuration)
	}
}

// S2 end-to-end smoke test: a grounded entity with jump held rises off the
// floor over one tick.
func TestSimulatePlayerJumpSmoke(t *testing.T) {
	w := newFakeWorld()
	w.set(0, 9, 0, fakeBlock{name: "minecraft:stone", shapes: fullCube})
	cat := testCatalogue(t)
	fs := feature.New(nil, feature.ParseVersion("1.20.1"))

	e := &entity.Entity{Pos: mgl64.Vec3{0.5, 10, 0.5}, OnGround: true}
	e.Control.Jump = true

	SimulatePlayer(e, w, cat, fs)

	if e.Pos.Y() <= 10 {
		t.Fatalf("pos.y = %v, expected the entity to have risen off the floor after a jump tick", e.Pos.Y())
	}
}

var fullCube = [][6]float64{{0, 0, 0, 1, 1, 1}}
