package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tickforge/voxelphys/catalogue"
	"github.com/tickforge/voxelphys/entity"
	"github.com/tickforge/voxelphys/feature"
	"github.com/tickforge/voxelphys/world"
)

type fakeBlock struct {
	name   string
	shapes [][6]float64
}

func (b fakeBlock) Name() string               { return b.name }
func (b fakeBlock) Metadata() int               { return 0 }
func (b fakeBlock) Shapes() [][6]float64        { return b.shapes }
func (b fakeBlock) Properties() world.Properties { return world.Properties{} }

var fullCube = [][6]float64{{0, 0, 0, 1, 1, 1}}

type fakeWorld struct {
	blocks map[[3]int]world.Block
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{blocks: map[[3]int]world.Block{}}
}

func (w *fakeWorld) set(x, y, z int, b world.Block) {
	w.blocks[[3]int{x, y, z}] = b
}

func (w *fakeWorld) GetBlock(x, y, z int) world.Block {
	return w.blocks[[3]int{x, y, z}]
}

func testCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	blocks := map[string]catalogue.BlockID{
		"minecraft:slime": {ID: 1}, "minecraft:ice": {ID: 2}, "minecraft:packed_ice": {ID: 3},
		"minecraft:soul_sand": {ID: 4}, "minecraft:ladder": {ID: 5}, "minecraft:vine": {ID: 6},
		"minecraft:water": {ID: 7}, "minecraft:lava": {ID: 8}, "minecraft:cobweb": {ID: 9},
	}
	fs := feature.New([]feature.Entry{
		{Name: "independentLiquidGravity", Versions: []feature.Condition{{"1.20"}}},
	}, feature.ParseVersion("1.20.1"))
	cat, err := catalogue.New(blocks, fs)
	if err != nil {
		t.Fatalf("catalogue.New() error = %v", err)
	}
	return cat
}

func TestSimulatePlayerDelegates(t *testing.T) {
	w := newFakeWorld()
	w.set(0, 9, 0, fakeBlock{name: "minecraft:stone", shapes: fullCube})
	cat := testCatalogue(t)
	fs := feature.New(nil, feature.ParseVersion("1.20.1"))
	p := New(cat, w, fs)

	e := &entity.Entity{Pos: mgl64.Vec3{0.5, 10, 0.5}, OnGround: true}
	e.Control.Jump = true

	p.SimulatePlayer(e)

	if e.Pos.Y() <= 10 {
		t.Fatalf("pos.y = %v, expected SimulatePlayer to have moved the entity upward off the jump", e.Pos.Y())
	}
}

func TestAdjustPositionHeightFindsFloorBelow(t *testing.T) {
	w := newFakeWorld()
	w.set(0, 5, 0, fakeBlock{name: "minecraft:stone", shapes: fullCube})
	cat := testCatalogue(t)
	fs := feature.New(nil, feature.ParseVersion("1.20.1"))
	p := New(cat, w, fs)

	got := p.AdjustPositionHeight(mgl64.Vec3{0.5, 10, 0.5})
	if got != 6 {
		t.Fatalf("AdjustPositionHeight() = %v, want 6 (top of the floor at y=5..6)", got)
	}
}

func TestAdjustPositionHeightUnchangedWhenNothingBelow(t *testing.T) {
	w := newFakeWorld()
	cat := testCatalogue(t)
	fs := feature.New(nil, feature.ParseVersion("1.20.1"))
	p := New(cat, w, fs)

	got := p.AdjustPositionHeight(mgl64.Vec3{0.5, 10, 0.5})
	if got != 10 {
		t.Fatalf("AdjustPositionHeight() = %v, want unchanged 10", got)
	}
}
