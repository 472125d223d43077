// Package catalogue builds the simulator's frozen, per-version static
// tables: block-name sets for slime/ice/soul-sand/honey/web/water/lava/
// ladder/vine/trapdoors/bubble-column, and the slipperiness map used by
// the ground movement regime. It is constructed once per world version
// and is thereafter immutable.
package catalogue

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/tickforge/voxelphys/feature"
	"github.com/tickforge/voxelphys/game"
)

// BlockID is one entry of the host's game-data catalogue,
// blocksByName[name] -> {id}, per the external interface this package
// validates against at construction time.
type BlockID struct {
	ID int
}

// mandatory is the list of canonical block names that must resolve in
// blocksByName or construction fails; spec.md §7.
var mandatory = []string{
	"minecraft:slime", "minecraft:ice", "minecraft:packed_ice",
	"minecraft:soul_sand", "minecraft:ladder", "minecraft:vine",
	"minecraft:water", "minecraft:lava", "minecraft:cobweb",
}

// Catalogue is the frozen set of per-version static block tables.
type Catalogue struct {
	Slipperiness *orderedmap.OrderedMap[string, float64]

	SoulSand     string
	HoneyBlock   string
	Cobweb       string
	Ladder       string
	Vine         string
	BubbleColumn string

	WaterIDs     map[string]bool
	LavaIDs      map[string]bool
	TrapdoorIDs  map[string]bool
	WaterLikeIDs map[string]bool

	LiquidGravity game.LiquidGravity
}

// New builds a Catalogue from the host's game-data catalogue
// (blocksByName) and the resolved FeatureSet for this world version.
func New(blocksByName map[string]BlockID, features *feature.FeatureSet) (*Catalogue, error) {
	for _, name := range mandatory {
		if _, ok := blocksByName[name]; !ok {
			return nil, game.ErrMissingCatalogueBlock(name)
		}
	}

	c := &Catalogue{
		Slipperiness: orderedmap.NewOrderedMap[string, float64](),
		SoulSand:     "minecraft:soul_sand",
		Cobweb:       "minecraft:cobweb",
		Ladder:       "minecraft:ladder",
		Vine:         "minecraft:vine",
		WaterIDs:     map[string]bool{"minecraft:water": true, "minecraft:flowing_water": true},
		LavaIDs:      map[string]bool{"minecraft:lava": true, "minecraft:flowing_lava": true},
		TrapdoorIDs:  map[string]bool{},
		WaterLikeIDs: map[string]bool{},
	}

	c.Slipperiness.Set("minecraft:slime", 0.8)
	c.Slipperiness.Set("minecraft:ice", 0.98)
	c.Slipperiness.Set("minecraft:packed_ice", 0.98)
	if _, ok := blocksByName["minecraft:frosted_ice"]; ok {
		c.Slipperiness.Set("minecraft:frosted_ice", 0.98)
	}
	if _, ok := blocksByName["minecraft:blue_ice"]; ok {
		c.Slipperiness.Set("minecraft:blue_ice", 0.989)
	}

	if _, ok := blocksByName["minecraft:honey_block"]; ok {
		c.HoneyBlock = "minecraft:honey_block"
	}
	if _, ok := blocksByName["minecraft:bubble_column"]; ok {
		c.BubbleColumn = "minecraft:bubble_column"
		c.WaterLikeIDs["minecraft:bubble_column"] = true
	}
	for _, name := range []string{"minecraft:seagrass", "minecraft:tall_seagrass", "minecraft:kelp", "minecraft:kelp_plant"} {
		if _, ok := blocksByName[name]; ok {
			c.WaterLikeIDs[name] = true
		}
	}
	for _, suffix := range []string{"trapdoor"} {
		for name := range blocksByName {
			if hasSuffix(name, suffix) {
				c.TrapdoorIDs[name] = true
			}
		}
	}

	if features.Enabled("independentLiquidGravity") {
		c.LiquidGravity = game.IndependentLiquidGravity()
	} else if features.Enabled("proportionalLiquidGravity") {
		c.LiquidGravity = game.ProportionalLiquidGravity()
	} else {
		return nil, game.ErrNoLiquidGravity
	}

	return c, nil
}

// SlipperinessOf returns the slipperiness for a block name, falling back
// to game.DefaultSlipperiness for unmapped blocks.
func (c *Catalogue) SlipperinessOf(name string) float64 {
	if v, ok := c.Slipperiness.Get(name); ok {
		return v
	}
	return game.DefaultSlipperiness
}

// IsWater reports whether name is a water or water-like block.
func (c *Catalogue) IsWater(name string) bool {
	return c.WaterIDs[name] || c.WaterLikeIDs[name]
}

// IsLava reports whether name is a lava block.
func (c *Catalogue) IsLava(name string) bool {
	return c.LavaIDs[name]
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
