// Package world defines the narrow, read-only interface the simulator
// needs from a host's block storage. It mirrors bedsim.WorldProvider from
// the reference movement simulator, pared down to what CollisionEngine,
// LiquidEngine and MovementEngine actually read: a block's shapes and its
// dynamic property sheet, nothing else.
package world

// Properties is a sparse sheet of the dynamic block properties this
// module cares about. Properties absent from a given block keep the Go
// zero value: Open=false, Facing="", Waterlogged=false, exactly as
// required when a block exposes no such property at all.
type Properties struct {
	Open        bool
	Facing      string
	Waterlogged bool
}

// Block is a single placed block as seen by the simulator.
type Block interface {
	// Name is the canonical, namespaced block name (e.g. "minecraft:ice").
	Name() string
	// Metadata is the raw block state/metadata value.
	Metadata() int
	// Shapes returns the block's collision shape as unit-cube-local
	// [x0,y0,z0,x1,y1,z1] tuples; empty for non-solid blocks such as air
	// or water.
	Shapes() [][6]float64
	// Properties returns the block's dynamic property sheet.
	Properties() Properties
}

// World is a read-only view over block storage. GetBlock returns nil for
// an absent or ungenerated block; callers must treat nil as air.
type World interface {
	GetBlock(x, y, z int) Block
}
