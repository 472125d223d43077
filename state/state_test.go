package state

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/attribute"
	"github.com/tickforge/voxelphys/entity"
)

type fakeBot struct {
	pos, vel                                       mgl64.Vec3
	yaw, pitch                                      float64
	onGround, inWater, inLava, inWeb                bool
	collidedH, collidedV, elytraFlying               bool
	jumpTicks                                      int
	jumpQueued                                     bool
	fireworkDuration                               int
	attrs                                          map[string]*attribute.Value
	effects                                        map[string]int
	slots                                          map[int]ItemStack
}

func (b *fakeBot) Position() mgl64.Vec3    { return b.pos }
func (b *fakeBot) SetPosition(v mgl64.Vec3) { b.pos = v }
func (b *fakeBot) Velocity() mgl64.Vec3    { return b.vel }
func (b *fakeBot) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *fakeBot) Yaw() float64            { return b.yaw }
func (b *fakeBot) Pitch() float64          { return b.pitch }

func (b *fakeBot) OnGround() bool       { return b.onGround }
func (b *fakeBot) SetOnGround(v bool)   { b.onGround = v }
func (b *fakeBot) IsInWater() bool      { return b.inWater }
func (b *fakeBot) SetIsInWater(v bool)  { b.inWater = v }
func (b *fakeBot) IsInLava() bool       { return b.inLava }
func (b *fakeBot) SetIsInLava(v bool)   { b.inLava = v }
func (b *fakeBot) IsInWeb() bool        { return b.inWeb }
func (b *fakeBot) SetIsInWeb(v bool)    { b.inWeb = v }

func (b *fakeBot) IsCollidedHorizontally() bool     { return b.collidedH }
func (b *fakeBot) SetIsCollidedHorizontally(v bool) { b.collidedH = v }
func (b *fakeBot) IsCollidedVertically() bool       { return b.collidedV }
func (b *fakeBot) SetIsCollidedVertically(v bool)   { b.collidedV = v }
func (b *fakeBot) ElytraFlying() bool               { return b.elytraFlying }
func (b *fakeBot) SetElytraFlying(v bool)           { b.elytraFlying = v }

func (b *fakeBot) JumpTicks() int                    { return b.jumpTicks }
func (b *fakeBot) SetJumpTicks(v int)                { b.jumpTicks = v }
func (b *fakeBot) JumpQueued() bool                  { return b.jumpQueued }
func (b *fakeBot) SetJumpQueued(v bool)              { b.jumpQueued = v }
func (b *fakeBot) FireworkRocketDuration() int       { return b.fireworkDuration }
func (b *fakeBot) SetFireworkRocketDuration(v int)   { b.fireworkDuration = v }

func (b *fakeBot) Attributes() map[string]*attribute.Value { return b.attrs }
func (b *fakeBot) Effects() map[string]int                 { return b.effects }
func (b *fakeBot) InventorySlot(index int) ItemStack        { return b.slots[index] }

func newFakeBot() *fakeBot {
	return &fakeBot{
		attrs:   map[string]*attribute.Value{},
		effects: map[string]int{},
		slots:   map[int]ItemStack{},
	}
}

func TestEffectLevelPresentAndAbsent(t *testing.T) {
	effects := map[string]int{"JumpBoost": 1}
	if got := effectLevel(effects, "JumpBoost"); got != 2 {
		t.Fatalf("effectLevel(JumpBoost) = %d, want 2 (amplifier+1)", got)
	}
	if got := effectLevel(effects, "Speed"); got != 0 {
		t.Fatalf("effectLevel(Speed) = %d, want 0 (absent)", got)
	}
}

func TestDepthStriderLevelEmptyOrInvalid(t *testing.T) {
	if got := depthStriderLevel(nil); got != 0 {
		t.Fatalf("depthStriderLevel(nil) = %d, want 0", got)
	}
	if got := depthStriderLevel([]byte{}); got != 0 {
		t.Fatalf("depthStriderLevel(empty) = %d, want 0", got)
	}
	if got := depthStriderLevel([]byte{0xff, 0x00, 0x01, 0x02}); got != 0 {
		t.Fatalf("depthStriderLevel(garbage) = %d, want 0", got)
	}
}

func TestNewSnapshotsBotIntoEntity(t *testing.T) {
	bot := newFakeBot()
	bot.pos = mgl64.Vec3{1, 2, 3}
	bot.vel = mgl64.Vec3{0.1, 0.2, 0.3}
	bot.yaw, bot.pitch = 1.5, -0.5
	bot.onGround = true
	bot.effects["JumpBoost"] = 2
	bot.effects["Levitation"] = 0
	bot.slots[chestSlot] = ItemStack{Name: elytraItemName}

	e := New(bot, entity.Control{Sprint: true})

	if e.Pos != bot.pos || e.Vel != bot.vel {
		t.Fatalf("pos/vel not copied: e.Pos=%v e.Vel=%v", e.Pos, e.Vel)
	}
	if e.Yaw != 1.5 || e.Pitch != -0.5 {
		t.Fatalf("yaw/pitch not copied: %v %v", e.Yaw, e.Pitch)
	}
	if !e.OnGround {
		t.Fatal("onGround not copied")
	}
	if e.JumpBoost != 3 {
		t.Fatalf("jumpBoost = %d, want 3 (amplifier 2 + 1)", e.JumpBoost)
	}
	if e.Levitation != 1 {
		t.Fatalf("levitation = %d, want 1 (amplifier 0 + 1)", e.Levitation)
	}
	if !e.ElytraEquipped {
		t.Fatal("expected elytra in the chest slot to be detected")
	}
	if !e.Control.Sprint {
		t.Fatal("control not copied")
	}
}

func TestApplyWritesBackToBot(t *testing.T) {
	bot := newFakeBot()
	e := &entity.Entity{
		Pos:                    mgl64.Vec3{5, 6, 7},
		Vel:                    mgl64.Vec3{0.1, 0, 0},
		OnGround:               true,
		IsCollidedHorizontally: true,
		JumpTicks:              3,
	}

	Apply(e, bot)

	if bot.pos != e.Pos || bot.vel != e.Vel {
		t.Fatalf("pos/vel not written back: bot.pos=%v bot.vel=%v", bot.pos, bot.vel)
	}
	if !bot.onGround || !bot.collidedH {
		t.Fatal("flags not written back")
	}
	if bot.jumpTicks != 3 {
		t.Fatalf("jumpTicks = %d, want 3", bot.jumpTicks)
	}
}
