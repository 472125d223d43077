// Package state implements PlayerState: the snapshot taken from a host
// bot into an entity.Entity before a tick, and the write-back after one.
// Effect-level derivation and boots/chest NBT parsing are grounded on the
// reference client's player/movement/entity.go snapshot logic, adapted to
// this module's narrower Bot capability interface.
package state

import (
	"strings"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/attribute"
	"github.com/tickforge/voxelphys/entity"
)

const (
	bootsSlot = 8
	chestSlot = 6

	elytraItemName = "minecraft:elytra"
	depthStriderID = 8 // legacy numeric enchantment id
)

// ItemStack is the narrow view of an inventory slot this package reads:
// the item's canonical name and its raw NBT tag compound, nil if the item
// carries none.
type ItemStack struct {
	Name string
	NBT  []byte
}

// Bot is the host capability interface PlayerState snapshots from and
// writes back to. It is deliberately narrow: only the fields the
// simulator actually touches.
type Bot interface {
	Position() mgl64.Vec3
	SetPosition(mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(mgl64.Vec3)

	Yaw() float64
	Pitch() float64

	OnGround() bool
	SetOnGround(bool)
	IsInWater() bool
	SetIsInWater(bool)
	IsInLava() bool
	SetIsInLava(bool)
	IsInWeb() bool
	SetIsInWeb(bool)
	IsCollidedHorizontally() bool
	SetIsCollidedHorizontally(bool)
	IsCollidedVertically() bool
	SetIsCollidedVertically(bool)
	ElytraFlying() bool
	SetElytraFlying(bool)

	JumpTicks() int
	SetJumpTicks(int)
	JumpQueued() bool
	SetJumpQueued(bool)
	FireworkRocketDuration() int
	SetFireworkRocketDuration(int)

	// Attributes returns the entity's live attribute map, keyed by
	// canonical name; PlayerState copies the reference, not a clone, so
	// modifier toggles persist across ticks.
	Attributes() map[string]*attribute.Value

	// Effects returns the active status-effect table keyed by canonical
	// name (JumpBoost, Speed, Slowness, DolphinsGrace, SlowFalling,
	// Levitation), value = amplifier (0-based). Absent means inactive.
	Effects() map[string]int

	// InventorySlot returns the stack at a raw slot index, the zero
	// ItemStack if empty.
	InventorySlot(index int) ItemStack
}

// PlayerState is the public constructor named to match the reference
// simulator's external surface; it is New under another name.
func PlayerState(bot Bot, control entity.Control) *entity.Entity {
	return New(bot, control)
}

// New snapshots bot and control into a fresh entity.Entity ready for one
// tick of simulation.
func New(bot Bot, control entity.Control) *entity.Entity {
	e := &entity.Entity{
		Pos:   bot.Position(),
		Vel:   bot.Velocity(),
		Yaw:   bot.Yaw(),
		Pitch: bot.Pitch(),

		OnGround:               bot.OnGround(),
		IsInWater:              bot.IsInWater(),
		IsInLava:               bot.IsInLava(),
		IsInWeb:                bot.IsInWeb(),
		IsCollidedHorizontally: bot.IsCollidedHorizontally(),
		IsCollidedVertically:   bot.IsCollidedVertically(),
		ElytraFlying:           bot.ElytraFlying(),

		JumpTicks:              bot.JumpTicks(),
		JumpQueued:             bot.JumpQueued(),
		FireworkRocketDuration: bot.FireworkRocketDuration(),

		Attributes: bot.Attributes(),
		Control:    control,
	}

	effects := bot.Effects()
	e.JumpBoost = effectLevel(effects, "JumpBoost")
	e.Speed = effectLevel(effects, "Speed")
	e.Slowness = effectLevel(effects, "Slowness")
	e.DolphinsGrace = effectLevel(effects, "DolphinsGrace")
	e.SlowFalling = effectLevel(effects, "SlowFalling")
	e.Levitation = effectLevel(effects, "Levitation")

	e.DepthStrider = depthStriderLevel(bot.InventorySlot(bootsSlot).NBT)
	e.ElytraEquipped = bot.InventorySlot(chestSlot).Name == elytraItemName

	return e
}

// Apply writes the simulated fields on e back onto bot.
func Apply(e *entity.Entity, bot Bot) {
	bot.SetPosition(e.Pos)
	bot.SetVelocity(e.Vel)

	bot.SetOnGround(e.OnGround)
	bot.SetIsInWater(e.IsInWater)
	bot.SetIsInLava(e.IsInLava)
	bot.SetIsInWeb(e.IsInWeb)
	bot.SetIsCollidedHorizontally(e.IsCollidedHorizontally)
	bot.SetIsCollidedVertically(e.IsCollidedVertically)
	bot.SetElytraFlying(e.ElytraFlying)

	bot.SetJumpTicks(e.JumpTicks)
	bot.SetJumpQueued(e.JumpQueued)
	bot.SetFireworkRocketDuration(e.FireworkRocketDuration)
}

// effectLevel reports amplifier+1 for a canonical effect name, 0 if
// absent.
func effectLevel(effects map[string]int, name string) int {
	if amp, ok := effects[name]; ok {
		return amp + 1
	}
	return 0
}

type enchantEntry struct {
	ID  interface{} `nbt:"id"`
	Lvl int16       `nbt:"lvl"`
}

type itemTag struct {
	Enchantments []enchantEntry `nbt:"Enchantments"`
	Ench         []enchantEntry `nbt:"ench"`
}

// depthStriderLevel parses raw item NBT for a depth_strider enchantment,
// accepting both the modern namespaced-string id form and the legacy
// numeric id form, returning 0 if absent or unparsable.
func depthStriderLevel(raw []byte) int {
	if len(raw) == 0 {
		return 0
	}
	var tag itemTag
	if err := nbt.Unmarshal(raw, &tag); err != nil {
		return 0
	}
	entries := tag.Enchantments
	if len(entries) == 0 {
		entries = tag.Ench
	}
	for _, ent := range entries {
		switch id := ent.ID.(type) {
		case string:
			if strings.Contains(id, "depth_strider") {
				return int(ent.Lvl)
			}
		case int16:
			if int(id) == depthStriderID {
				return int(ent.Lvl)
			}
		case int32:
			if int(id) == depthStriderID {
				return int(ent.Lvl)
			}
		}
	}
	return 0
}
