package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

const clipEpsilon = 1e-7

// AABB is an axis-aligned bounding box with inclusive min/max bounds on
// every axis. minA <= maxA is an invariant on every axis for every AABB
// value this package produces.
type AABB struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// NewAABB builds an AABB centered on (x, z) with y as the feet position,
// the shape every humanoid entity's collision box takes.
func NewAABB(pos mgl64.Vec3, halfWidth, height float64) AABB {
	return AABB{
		MinX: pos.X() - halfWidth, MinY: pos.Y(), MinZ: pos.Z() - halfWidth,
		MaxX: pos.X() + halfWidth, MaxY: pos.Y() + height, MaxZ: pos.Z() + halfWidth,
	}
}

// Box builds an AABB from an explicit unit-cube-local shape tuple translated
// by an integer block position, the shape CollisionEngine.GetSurroundingBBs
// emits for every block shape.
func Box(bx, by, bz int, x0, y0, z0, x1, y1, z1 float64) AABB {
	return AABB{
		MinX: float64(bx) + x0, MinY: float64(by) + y0, MinZ: float64(bz) + z0,
		MaxX: float64(bx) + x1, MaxY: float64(by) + y1, MaxZ: float64(bz) + z1,
	}
}

// Offset translates the AABB in place by (dx, dy, dz).
func (a *AABB) Offset(dx, dy, dz float64) {
	a.MinX += dx
	a.MaxX += dx
	a.MinY += dy
	a.MaxY += dy
	a.MinZ += dz
	a.MaxZ += dz
}

// Clone returns a copy of the AABB.
func (a AABB) Clone() AABB { return a }

// Extend grows the AABB toward the signed direction of (dx, dy, dz); it
// never shrinks an existing bound.
func (a AABB) Extend(dx, dy, dz float64) AABB {
	out := a
	if dx < 0 {
		out.MinX += dx
	} else {
		out.MaxX += dx
	}
	if dy < 0 {
		out.MinY += dy
	} else {
		out.MaxY += dy
	}
	if dz < 0 {
		out.MinZ += dz
	} else {
		out.MaxZ += dz
	}
	return out
}

// Contract shrinks the AABB symmetrically by (ax, ay, az).
func (a AABB) Contract(ax, ay, az float64) AABB {
	return AABB{
		MinX: a.MinX + ax, MinY: a.MinY + ay, MinZ: a.MinZ + az,
		MaxX: a.MaxX - ax, MaxY: a.MaxY - ay, MaxZ: a.MaxZ - az,
	}
}

// Intersects reports whether the two boxes overlap (strict intersection,
// not touch).
func (a AABB) Intersects(o AABB) bool {
	return a.MinX < o.MaxX && a.MaxX > o.MinX &&
		a.MinY < o.MaxY && a.MaxY > o.MinY &&
		a.MinZ < o.MaxZ && a.MaxZ > o.MinZ
}

// ComputeOffsetX returns the largest magnitude of dx (same sign) that does
// not cause a swept along X to intersect self; if a never collides with
// self along this axis, dx is returned unchanged. Mirrors
// VoxelShape.collideX from the reference client.
func (a AABB) ComputeOffsetX(o AABB, dx float64) float64 {
	if o.MaxY <= a.MinY+clipEpsilon || o.MinY >= a.MaxY-clipEpsilon ||
		o.MaxZ <= a.MinZ+clipEpsilon || o.MinZ >= a.MaxZ-clipEpsilon {
		return dx
	}
	if dx > 0 {
		if d := o.MinX - a.MaxX; d >= -clipEpsilon && d < dx {
			return d
		}
	} else {
		if d := o.MaxX - a.MinX; d <= clipEpsilon && d > dx {
			return d
		}
	}
	return dx
}

// ComputeOffsetY is the Y-axis analogue of ComputeOffsetX.
func (a AABB) ComputeOffsetY(o AABB, dy float64) float64 {
	if o.MaxX <= a.MinX+clipEpsilon || o.MinX >= a.MaxX-clipEpsilon ||
		o.MaxZ <= a.MinZ+clipEpsilon || o.MinZ >= a.MaxZ-clipEpsilon {
		return dy
	}
	if dy > 0 {
		if d := o.MinY - a.MaxY; d >= -clipEpsilon && d < dy {
			return d
		}
	} else {
		if d := o.MaxY - a.MinY; d <= clipEpsilon && d > dy {
			return d
		}
	}
	return dy
}

// ComputeOffsetZ is the Z-axis analogue of ComputeOffsetX.
func (a AABB) ComputeOffsetZ(o AABB, dz float64) float64 {
	if o.MaxX <= a.MinX+clipEpsilon || o.MinX >= a.MaxX-clipEpsilon ||
		o.MaxY <= a.MinY+clipEpsilon || o.MinY >= a.MaxY-clipEpsilon {
		return dz
	}
	if dz > 0 {
		if d := o.MinZ - a.MaxZ; d >= -clipEpsilon && d < dz {
			return d
		}
	} else {
		if d := o.MaxZ - a.MinZ; d <= clipEpsilon && d > dz {
			return d
		}
	}
	return dz
}

// Min returns the minimum corner of the AABB.
func (a AABB) Min() mgl64.Vec3 { return mgl64.Vec3{a.MinX, a.MinY, a.MinZ} }

// Max returns the maximum corner of the AABB.
func (a AABB) Max() mgl64.Vec3 { return mgl64.Vec3{a.MaxX, a.MaxY, a.MaxZ} }
