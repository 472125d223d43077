// Package physics exposes the simulator's public entry point: a Physics
// value closed over an immutable Catalogue and World, offering
// SimulatePlayer and AdjustPositionHeight. Grounded on the reference
// simulator's bedsim.Simulator, which is likewise a small struct of
// immutable collaborators with one hot per-tick method.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/catalogue"
	"github.com/tickforge/voxelphys/collision"
	"github.com/tickforge/voxelphys/entity"
	"github.com/tickforge/voxelphys/feature"
	"github.com/tickforge/voxelphys/game"
	"github.com/tickforge/voxelphys/movement"
	"github.com/tickforge/voxelphys/world"
)

// Physics is constructed once per (catalogue, world, version) triple and
// is pure thereafter; it holds no mutable state between ticks beyond what
// the caller threads through an *entity.Entity.
type Physics struct {
	Catalogue *catalogue.Catalogue
	World     world.World
	Features  *feature.FeatureSet
}

// New builds a Physics closed over cat, w and fs.
func New(cat *catalogue.Catalogue, w world.World, fs *feature.FeatureSet) *Physics {
	return &Physics{Catalogue: cat, World: w, Features: fs}
}

// SimulatePlayer advances e by one tick.
func (p *Physics) SimulatePlayer(e *entity.Entity) {
	movement.SimulatePlayer(e, p.World, p.Catalogue, p.Features)
}

// AdjustPositionHeight returns the y coordinate pos would settle at if
// dropped straight down onto the highest solid collider in its column,
// or pos.Y() unchanged if the column below it is empty down to a
// reasonable search depth. Used by hosts placing an entity (teleport,
// respawn) without running a full tick.
func (p *Physics) AdjustPositionHeight(pos mgl64.Vec3) float64 {
	const searchDepth = 256

	probe := game.NewAABB(pos, game.PlayerHalfWidth, game.PlayerHeight)
	blocks := collision.GetSurroundingBBs(p.World, probe.Extend(0, -searchDepth, 0))

	best := pos.Y()
	found := false
	for _, b := range blocks {
		if b.MaxX <= probe.MinX || b.MinX >= probe.MaxX || b.MaxZ <= probe.MinZ || b.MinZ >= probe.MaxZ {
			continue
		}
		if b.MaxY > pos.Y() {
			continue
		}
		if !found || b.MaxY > best {
			best = b.MaxY
			found = true
		}
	}
	if !found {
		return pos.Y()
	}
	return math.Max(best, pos.Y()-searchDepth)
}
