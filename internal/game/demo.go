package game

import (
	"container-indicator/internal/inventory"
	"container-indicator/internal/item"
	"container-indicator/internal/registry"
	"container-indicator/internal/world"
)

// DemoY is the height the demo containers stand at. The floor is one block below.
const DemoY = 64

var demoBlocks = []world.BlockType{
	world.BlockTypeBarrel,
	world.BlockTypeHopper,
	world.BlockTypeDispenser,
	world.BlockTypeDropper,
	world.BlockTypeCrafter,
	world.BlockTypeFurnace,
	world.BlockTypeBlastFurnace,
	world.BlockTypeSmoker,
	world.BlockTypeDecoratedPot,
	world.BlockTypeChest,
	world.BlockTypeTrappedChest,
	world.BlockTypeCopperChest,
}

var demoItems = []item.Type{
	item.TypeIronOre,
	item.TypeDiamond,
	item.TypeApple,
	item.TypeCobblestone,
	item.TypeOakLog,
	item.TypeRawBeef,
}

// Demo is a showcase world: one of every container in a row facing south and a double
// chest for each horizontal facing behind it, all on a one block thick stone floor.
type Demo struct {
	Containers []world.Pos
	// Chests holds the left and right half of each double chest.
	Chests [][2]world.Pos
}

// BuildDemo places the showcase into w.
func BuildDemo(w *world.World) *Demo {
	floor := world.NewFlatGenerator(DemoY, world.BlockTypeStone).WithDepth(1)
	lo := world.ChunkCoordOf(world.Pos{-2, DemoY, -2})
	hi := world.ChunkCoordOf(world.Pos{2 * len(demoBlocks), DemoY, 7})
	for cx := lo.X; cx <= hi.X; cx++ {
		for cz := lo.Z; cz <= hi.Z; cz++ {
			w.LoadChunk(world.ChunkCoord{X: cx, Y: lo.Y, Z: cz}, floor)
		}
	}

	d := &Demo{}
	for i, t := range demoBlocks {
		p := world.Pos{2 * i, DemoY, 0}
		w.PlaceBlock(p, world.DefaultState(t).WithFacing(world.FaceSouth))
		d.Containers = append(d.Containers, p)
	}

	for i, f := range world.HorizontalFaces {
		left := world.Pos{1 + 4*i, DemoY, 4}
		right := left.Side(f.ClockWise())
		chest := world.DefaultState(world.BlockTypeChest).WithFacing(f)
		w.PlaceBlock(left, chest.WithChest(world.ChestLeft))
		w.PlaceBlock(right, chest.WithChest(world.ChestRight))
		d.Chests = append(d.Chests, [2]world.Pos{left, right})
	}
	return d
}

// Positions lists every container of the demo, chest halves included.
func (d *Demo) Positions() []world.Pos {
	out := append([]world.Pos(nil), d.Containers...)
	for _, c := range d.Chests {
		out = append(out, c[0], c[1])
	}
	return out
}

// Step applies the scripted inventory change for a tick and returns the container it
// touched. Containers are visited in turn: an occupied one is emptied, an empty one
// receives a stack. Furnaces alternate between the input and the fuel slot on each
// visit.
func (d *Demo) Step(w *world.World, tick int) world.Pos {
	all := d.Positions()
	p := all[tick%len(all)]
	be := w.BlockEntity(p)
	if be == nil || be.Inventory == nil {
		return p
	}
	inv := be.Inventory
	if !inv.IsEmpty() {
		inv.Clear()
		return p
	}

	round := tick / len(all)
	if registry.HasProperty(be.Type, registry.PropHasFuel) {
		if round%2 == 0 {
			inv.SetItem(inventory.FurnaceInputSlot, item.NewItemStack(item.TypeIronOre, 1+round%8))
		} else {
			inv.SetItem(inventory.FurnaceFuelSlot, item.NewItemStack(item.TypeCoal, 1+round%8))
		}
		return p
	}
	inv.SetItem(tick%inv.Size(), item.NewItemStack(demoItems[round%len(demoItems)], 1+tick%16))
	return p
}
