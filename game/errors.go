package game

import "github.com/tickforge/voxelphys/simerror"

// ErrNoLiquidGravity is returned by catalogue construction when neither
// the independentLiquidGravity nor proportionalLiquidGravity feature
// matches the world's version. The caller has an unknown version and must
// abort rather than guess at submerged-gravity arithmetic.
var ErrNoLiquidGravity = simerror.New("no liquid gravity settings matched for this version")

// ErrMissingCatalogueBlock is returned when a mandatory block id (slime,
// ice, packed_ice, soul_sand, ladder, vine, water, lava, cobweb) has no
// entry in the game-data catalogue passed to catalogue construction.
func ErrMissingCatalogueBlock(name string) error {
	return simerror.New("missing mandatory catalogue block: %s", name)
}
