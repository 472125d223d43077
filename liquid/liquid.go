// Package liquid implements LiquidEngine: rendered fluid depth, the
// four-neighbour flow accumulation and the push applied to an entity
// standing in flowing water. Grounded on the reference movement
// simulator's water-current handling in player/movement/liquid.go,
// rewritten against this module's World interface.
package liquid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/catalogue"
	"github.com/tickforge/voxelphys/game"
	"github.com/tickforge/voxelphys/world"
)

// cardinal neighbour offsets used by GetFlow, in (dx, dz) order.
var cardinals = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// GetRenderedDepth returns -1 if b is absent or not water/water-like/
// waterlogged, 0 if b is water-like or waterlogged, else the block's
// metadata if it is below 8 (a falling source has the high bit set and
// renders as a full block, depth 0).
func GetRenderedDepth(cat *catalogue.Catalogue, b world.Block) int {
	if b == nil {
		return -1
	}
	name := b.Name()
	if cat.WaterLikeIDs[name] || b.Properties().Waterlogged {
		return 0
	}
	if !cat.WaterIDs[name] {
		return -1
	}
	meta := b.Metadata()
	if meta >= 8 {
		return 0
	}
	return meta
}

// GetLiquidHeightPercent converts a rendered depth into the fraction of
// the block that lies above the fluid surface: IsInWaterApplyCurrent puts
// the surface at the block's y + 1 minus this value.
func GetLiquidHeightPercent(depth int) float64 {
	return float64(depth+1) / 9.0
}

// GetFlow computes the normalized flow vector at block, summing the
// contribution of its four cardinal neighbours, and biasing the result
// downward along cliffs below a falling source.
func GetFlow(w world.World, cat *catalogue.Catalogue, x, y, z int, block world.Block) mgl64.Vec3 {
	l := GetRenderedDepth(cat, block)
	acc := mgl64.Vec3{}

	for _, c := range cardinals {
		nx, nz := x+c[0], z+c[1]
		neighbour := w.GetBlock(nx, y, nz)
		a := GetRenderedDepth(cat, neighbour)
		if a < 0 {
			if neighbour != nil && hasNonEmptyShape(neighbour) {
				below := w.GetBlock(nx, y-1, nz)
				a2 := GetRenderedDepth(cat, below)
				if a2 >= 0 {
					h := float64(a2) - float64(l-8)
					acc[0] += float64(c[0]) * h
					acc[2] += float64(c[1]) * h
				}
			}
			continue
		}
		h := float64(a - l)
		acc[0] += float64(c[0]) * h
		acc[2] += float64(c[1]) * h
	}

	if block != nil && block.Metadata() >= 8 {
		for _, c := range cardinals {
			nx, nz := x+c[0], z+c[1]
			if obstacle(w, nx, y, nz) || obstacle(w, nx, y+1, nz) {
				if acc.Len() > 0 {
					acc = acc.Normalize()
				}
				acc[1] -= 6
				break
			}
		}
	}

	if acc.Len() > 0 {
		acc = acc.Normalize()
	}
	return acc
}

func hasNonEmptyShape(b world.Block) bool {
	return len(b.Shapes()) > 0
}

func obstacle(w world.World, x, y, z int) bool {
	b := w.GetBlock(x, y, z)
	return b != nil && hasNonEmptyShape(b)
}

// IsInWaterApplyCurrent enumerates water-bearing blocks within bb whose
// rendered surface is at or below ceil(bb.MaxY), sums their flow, and if the
// accumulated vector has nonzero length, pushes vel by 0.014 along its
// normalized direction. Returns whether any water-bearing block was
// found, i.e. whether the entity is "in water" for this tick.
func IsInWaterApplyCurrent(w world.World, cat *catalogue.Catalogue, bb game.AABB, vel *mgl64.Vec3) bool {
	minX, minY, minZ := int(math.Floor(bb.MinX)), int(math.Floor(bb.MinY)), int(math.Floor(bb.MinZ))
	maxX := int(math.Floor(bb.MaxX))

	found := false
	acc := mgl64.Vec3{}

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= int(math.Ceil(bb.MaxY)); y++ {
			for z := minZ; z <= int(math.Floor(bb.MaxZ)); z++ {
				b := w.GetBlock(x, y, z)
				if b == nil {
					continue
				}
				name := b.Name()
				if !cat.WaterIDs[name] && !cat.WaterLikeIDs[name] && !b.Properties().Waterlogged {
					continue
				}
				depth := GetRenderedDepth(cat, b)
				if depth < 0 {
					continue
				}
				heightPct := GetLiquidHeightPercent(depth)
				surfaceY := float64(y) + 1 - heightPct
				if surfaceY > math.Ceil(bb.MaxY) {
					continue
				}
				found = true
				acc = acc.Add(GetFlow(w, cat, x, y, z, b))
			}
		}
	}

	if acc.Len() > 0 {
		dir := acc.Normalize()
		vel[0] += dir.X() * 0.014
		vel[1] += dir.Y() * 0.014
		vel[2] += dir.Z() * 0.014
	}

	return found
}

// IsInLava reports whether any lava block overlaps bb. Lava has no current
// to apply, so unlike water this is a plain presence check.
func IsInLava(w world.World, cat *catalogue.Catalogue, bb game.AABB) bool {
	minX, minY, minZ := int(math.Floor(bb.MinX)), int(math.Floor(bb.MinY)), int(math.Floor(bb.MinZ))
	maxX, maxY, maxZ := int(math.Floor(bb.MaxX)), int(math.Floor(bb.MaxY)), int(math.Floor(bb.MaxZ))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				b := w.GetBlock(x, y, z)
				if b != nil && cat.IsLava(b.Name()) {
					return true
				}
			}
		}
	}
	return false
}
