// Package collision implements CollisionEngine: the block-lattice query,
// the Y-X-Z sweep resolution, the sneak edge-guard, the step-up search and
// the post-step block effects (soul sand, honey, cobweb, bubble column,
// slime bounce). Grounded on the reference simulator's tryCollisions /
// avoidEdge / trySetPostCollisionMotion family of functions, rewritten
// against this module's float64 AABB and World types rather than the
// reference's float32 penetration-resolution boxes.
package collision

import (
	"math"
	"sync"

	"github.com/tickforge/voxelphys/assert"
	"github.com/tickforge/voxelphys/catalogue"
	"github.com/tickforge/voxelphys/entity"
	"github.com/tickforge/voxelphys/game"
	"github.com/tickforge/voxelphys/world"
)

const sneakStep = 0.05

// GetSurroundingBBs iterates the integer lattice around queryBB and
// returns one AABB per block collision shape present in range. y starts
// one below floor(minY) so tall shapes (fences, walls) based below minY
// are still considered, per spec.
func GetSurroundingBBs(w world.World, queryBB game.AABB) []game.AABB {
	return appendSurroundingBBs(w, queryBB, nil)
}

func appendSurroundingBBs(w world.World, queryBB game.AABB, out []game.AABB) []game.AABB {
	minX := int(math.Floor(queryBB.MinX))
	minY := int(math.Floor(queryBB.MinY)) - 1
	minZ := int(math.Floor(queryBB.MinZ))
	maxX := int(math.Floor(queryBB.MaxX))
	maxY := int(math.Floor(queryBB.MaxY))
	maxZ := int(math.Floor(queryBB.MaxZ))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				b := w.GetBlock(x, y, z)
				if b == nil {
					continue
				}
				for _, shape := range b.Shapes() {
					out = append(out, game.Box(x, y, z, shape[0], shape[1], shape[2], shape[3], shape[4], shape[5]))
				}
			}
		}
	}
	return out
}

// blockScratchPool holds reusable block-AABB scratch slices for the
// per-tick lattice queries: MoveEntity's one surrounding-block query and
// each sneakEdgeGuard probe. Mirrors the reference's
// player/movement/pool.go ctxPool: each buffer is checked out for one
// query (MoveEntity holds its own until it returns) and put back before
// the caller returns, so the
// single-threaded-per-goroutine contract extends to any number of
// concurrent callers without shared mutation.
var blockScratchPool = sync.Pool{
	New: func() any {
		s := make([]game.AABB, 0, 32)
		return &s
	},
}

func anyBlockIn(w world.World, queryBB game.AABB) bool {
	bufPtr := blockScratchPool.Get().(*[]game.AABB)
	*bufPtr = appendSurroundingBBs(w, queryBB, (*bufPtr)[:0])
	found := len(*bufPtr) > 0
	blockScratchPool.Put(bufPtr)
	return found
}

// MoveEntity resolves a candidate translation (dx, dy, dz) against the
// world and updates e.Vel, e.Pos, e.OnGround, e.IsCollidedHorizontally,
// e.IsCollidedVertically and e.IsInWeb in place.
func MoveEntity(e *entity.Entity, w world.World, cat *catalogue.Catalogue, velocityBlocksOnCollision, velocityBlocksOnTop bool, dx, dy, dz float64) {
	if e.IsInWeb {
		dx *= 0.25
		dy *= 0.05
		dz *= 0.25
		e.Vel = e.Vel.Mul(0)
		e.IsInWeb = false
	}

	playerAABB := game.NewAABB(e.Pos, game.PlayerHalfWidth, game.PlayerHeight)

	if e.Control.Sneak && e.OnGround {
		dx, dz = sneakEdgeGuard(w, playerAABB, dx, dz)
	}

	oldVelX, oldVelY, oldVelZ := dx, dy, dz

	query := playerAABB.Extend(dx, dy, dz)
	blocksPtr := blockScratchPool.Get().(*[]game.AABB)
	*blocksPtr = appendSurroundingBBs(w, query, (*blocksPtr)[:0])
	blocks := *blocksPtr
	defer blockScratchPool.Put(blocksPtr)

	movedAABB := playerAABB
	for _, b := range blocks {
		dy = movedAABB.ComputeOffsetY(b, dy)
	}
	movedAABB.Offset(0, dy, 0)
	for _, b := range blocks {
		dx = movedAABB.ComputeOffsetX(b, dx)
	}
	movedAABB.Offset(dx, 0, 0)
	for _, b := range blocks {
		dz = movedAABB.ComputeOffsetZ(b, dz)
	}
	movedAABB.Offset(0, 0, dz)

	horizontallyBlocked := dx != oldVelX || dz != oldVelZ
	clampedFromNegativeY := dy != oldVelY && oldVelY < 0

	// dyForFlags is the value compared against oldVelY for collision-flag
	// and velocity-zeroing purposes. It tracks dy exactly, except along the
	// step-up path, where the spec requires the emitted dy to be negated
	// for those purposes while the AABB is still positioned by the
	// un-negated lift.
	dyForFlags := dy

	if game.StepHeight > 0 && horizontallyBlocked && (e.OnGround || clampedFromNegativeY) {
		if sdx, sdy, sdz, ok := tryStepUp(w, playerAABB, oldVelX, oldVelY, oldVelZ); ok {
			if sdx*sdx+sdz*sdz > dx*dx+dz*dz {
				dx, dz = sdx, sdz
				dy = sdy
				dyForFlags = -sdy
				movedAABB = playerAABB
				movedAABB.Offset(dx, dy, dz)
			}
		}
	}

	assert.IsTrue(movedAABB.MinX <= movedAABB.MaxX && movedAABB.MinY <= movedAABB.MaxY && movedAABB.MinZ <= movedAABB.MaxZ,
		"collision produced an inverted AABB")

	e.Pos = mid(movedAABB)
	e.IsCollidedHorizontally = dx != oldVelX || dz != oldVelZ
	e.IsCollidedVertically = dyForFlags != oldVelY
	e.OnGround = e.IsCollidedVertically && oldVelY < 0

	if dx != oldVelX {
		e.Vel[0] = 0
	}
	if dz != oldVelZ {
		e.Vel[2] = 0
	}
	if dyForFlags != oldVelY {
		below := w.GetBlock(int(math.Floor(e.Pos.X())), int(math.Floor(e.Pos.Y()-0.2)), int(math.Floor(e.Pos.Z())))
		if below != nil && below.Name() == "minecraft:slime" && !e.Control.Sneak {
			e.Vel[1] = -e.Vel[1]
		} else {
			e.Vel[1] = 0
		}
	}

	applyPostStepBlockEffects(e, w, cat, movedAABB, velocityBlocksOnCollision)
	if velocityBlocksOnTop {
		applyLegacyVelocityBlocksOnTop(e, w, cat)
	}
}

func mid(b game.AABB) [3]float64 {
	return [3]float64{
		(b.MinX+b.MaxX)/2, b.MinY, (b.MinZ + b.MaxZ) / 2,
	}
}

// tryStepUp attempts the step-up heuristic by computing two candidate
// resolutions against the pre-move AABB and keeping whichever yields the
// larger dx^2+dz^2, per spec: (a) test the vertical clearance against a
// copy of flatAABB already shifted by the XZ delta, then resolve X and Z;
// (b) test the vertical clearance against flatAABB's own, unshifted
// position (no XZ pre-extension), then resolve X and Z the same way. Both
// candidates share one block query, re-fetched against a box that
// actually reaches stepHeight above flatAABB together with the XZ delta —
// reusing a query sized for the flat move's own (often much smaller,
// sometimes negative) dy can miss a low ceiling sitting between
// flatAABB's top and flatAABB.MaxY+stepHeight, letting the step succeed
// into it. Splitting the query per candidate instead of sharing one is
// its own trap: a candidate whose query window doesn't reach the other's
// target column goes blind to real obstacles there and can pick an
// unsafe, higher-scoring result.
//
// The returned sdy is the un-negated lift: the vertical offset applied to
// flatAABB to reach the stepped position. The caller in MoveEntity negates
// this separately when comparing against oldVelY for collision-flag and
// velocity-zeroing purposes, per spec.
func tryStepUp(w world.World, flatAABB game.AABB, dx, dy, dz float64) (sdx, sdy, sdz float64, ok bool) {
	blocks := GetSurroundingBBs(w, flatAABB.Extend(dx, game.StepHeight, dz))

	preShifted := flatAABB
	preShifted.Offset(dx, 0, dz)
	dxA, liftA, dzA := stepCandidate(flatAABB, preShifted, blocks, dx, dz)

	dxB, liftB, dzB := stepCandidate(flatAABB, flatAABB, blocks, dx, dz)

	if dxA*dxA+dzA*dzA >= dxB*dxB+dzB*dzB {
		return dxA, liftA, dzA, true
	}
	return dxB, liftB, dzB, true
}

// stepCandidate finds how far sweepFrom can rise by stepHeight against
// blocks, applies that lift to flatAABB, resolves X then Z against the
// lifted box, then settles back down toward flatAABB's original height.
// sweepFrom is the box whose position governs the vertical clearance
// test — flatAABB itself, or flatAABB pre-shifted by the candidate's XZ
// delta — while flatAABB always anchors the box that's actually offset
// and resolved. lift is upDy+downDy, the net un-negated vertical delta.
func stepCandidate(flatAABB, sweepFrom game.AABB, blocks []game.AABB, dx, dz float64) (sdx, lift, sdz float64) {
	upDy := game.StepHeight
	for _, b := range blocks {
		upDy = sweepFrom.ComputeOffsetY(b, upDy)
	}

	stepBB := flatAABB
	stepBB.Offset(0, upDy, 0)

	for _, b := range blocks {
		dx = stepBB.ComputeOffsetX(b, dx)
	}
	stepBB.Offset(dx, 0, 0)
	for _, b := range blocks {
		dz = stepBB.ComputeOffsetZ(b, dz)
	}
	stepBB.Offset(0, 0, dz)

	downDy := -upDy
	for _, b := range blocks {
		downDy = stepBB.ComputeOffsetY(b, downDy)
	}

	return dx, upDy + downDy, dz
}

// sneakEdgeGuard shrinks dx and dz toward zero while the sneaking entity
// would otherwise walk off a ledge: a test box translated by the
// candidate delta and dropped by stepHeight*1.01 finds no colliders below
// it. Grounded on the reference's avoidEdge.
func sneakEdgeGuard(w world.World, aabb game.AABB, dx, dz float64) (float64, float64) {
	test := aabb.Contract(0.025, 0, 0.025)

	probe := func(px, pz float64) game.AABB {
		out := test
		out.Offset(px, -game.StepHeight*1.01, pz)
		return out
	}

	for dx != 0 && !anyBlockIn(w, probe(dx, 0)) {
		dx = shrinkTowardZero(dx, sneakStep)
	}
	for dz != 0 && !anyBlockIn(w, probe(0, dz)) {
		dz = shrinkTowardZero(dz, sneakStep)
	}
	for dx != 0 && dz != 0 && !anyBlockIn(w, probe(dx, dz)) {
		dx = shrinkTowardZero(dx, sneakStep)
		dz = shrinkTowardZero(dz, sneakStep)
	}
	return dx, dz
}

func shrinkTowardZero(v, step float64) float64 {
	if v < step && v >= -step {
		return 0
	}
	if v > 0 {
		return v - step
	}
	return v + step
}

func applyPostStepBlockEffects(e *entity.Entity, w world.World, cat *catalogue.Catalogue, finalAABB game.AABB, velocityBlocksOnCollision bool) {
	contracted := finalAABB.Contract(0.001, 0.001, 0.001)
	minX, minY, minZ := int(math.Floor(contracted.MinX)), int(math.Floor(contracted.MinY)), int(math.Floor(contracted.MinZ))
	maxX, maxY, maxZ := int(math.Floor(contracted.MaxX)), int(math.Floor(contracted.MaxY)), int(math.Floor(contracted.MaxZ))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				b := w.GetBlock(x, y, z)
				if b == nil {
					continue
				}
				name := b.Name()

				if velocityBlocksOnCollision {
					if name == cat.SoulSand {
						e.Vel[0] *= game.SoulSandSpeed
						e.Vel[2] *= game.SoulSandSpeed
					} else if cat.HoneyBlock != "" && name == cat.HoneyBlock {
						e.Vel[0] *= game.HoneyBlockSpeed
						e.Vel[2] *= game.HoneyBlockSpeed
					}
				}

				if name == cat.Cobweb {
					e.IsInWeb = true
				}

				if cat.BubbleColumn != "" && name == cat.BubbleColumn {
					above := w.GetBlock(x, y+1, z)
					surface := above == nil
					drag := game.BubbleSubmerged
					if surface {
						drag = game.BubbleSurface
					}
					down := b.Metadata() == 0
					if down {
						e.Vel[1] = math.Max(drag.MaxDown, e.Vel.Y()-drag.Down)
					} else {
						e.Vel[1] = math.Min(drag.MaxUp, e.Vel.Y()+drag.Up)
					}
				}
			}
		}
	}
}

func applyLegacyVelocityBlocksOnTop(e *entity.Entity, w world.World, cat *catalogue.Catalogue) {
	b := w.GetBlock(int(math.Floor(e.Pos.X())), int(math.Floor(e.Pos.Y()-0.5)), int(math.Floor(e.Pos.Z())))
	if b == nil {
		return
	}
	name := b.Name()
	if name == cat.SoulSand {
		e.Vel[0] *= game.SoulSandSpeed
		e.Vel[2] *= game.SoulSandSpeed
	} else if cat.HoneyBlock != "" && name == cat.HoneyBlock {
		e.Vel[0] *= game.HoneyBlockSpeed
		e.Vel[2] *= game.HoneyBlockSpeed
	}
}
