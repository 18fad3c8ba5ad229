package registry

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"container-indicator/internal/inventory"
	"container-indicator/internal/logger"
	"container-indicator/internal/world"
	"container-indicator/pkg/blockmodel"
)

// Property is a set of indicator flags a block supports.
type Property uint8

const (
	PropHasItems Property = 1 << iota
	PropHasInput
	PropHasFuel
)

// Family groups blocks that share indicator behaviour.
type Family uint8

const (
	FamilyNone Family = iota
	// FamilySimple covers barrels, hoppers, dispensers, droppers and crafters.
	FamilySimple
	FamilyFurnace
	FamilyPot
	FamilyChest
)

func (f Family) String() string {
	switch f {
	case FamilySimple:
		return "simple"
	case FamilyFurnace:
		return "furnace"
	case FamilyPot:
		return "pot"
	case FamilyChest:
		return "chest"
	}
	return "none"
}

// BlockDefinition defines the properties of a block type
type BlockDefinition struct {
	ID            world.BlockType
	Name          string
	Family        Family
	Props         Property
	InventorySize int
	IsSolid       bool
	// Orientable blocks turn their model to face the state's facing.
	Orientable    bool

	// Filled by LoadModels.
	Model            string
	ModelY           int
	Elements         []blockmodel.Element
	AmbientOcclusion bool
	Particle         string
}

// Has reports whether the block carries the property.
func (d *BlockDefinition) Has(p Property) bool {
	return d != nil && d.Props&p == p
}

var (
	Blocks     = make(map[world.BlockType]*BlockDefinition)
	BlockNames = make(map[string]world.BlockType)
)

func RegisterBlock(def *BlockDefinition) {
	Blocks[def.ID] = def
	BlockNames[def.Name] = def.ID
}

// Lookup returns the definition for a block type.
func Lookup(t world.BlockType) (*BlockDefinition, bool) {
	def, ok := Blocks[t]
	return def, ok
}

// HasProperty reports whether the block type carries the property.
func HasProperty(t world.BlockType, p Property) bool {
	def, ok := Blocks[t]
	return ok && def.Has(p)
}

// InventorySize returns the number of block entity slots for the type, zero for blocks
// without a block entity. It satisfies world.InventorySizer.
func InventorySize(t world.BlockType) int {
	if def, ok := Blocks[t]; ok {
		return def.InventorySize
	}
	return 0
}

// IsSolid reports whether the block fully hides the faces of its neighbours.
func IsSolid(t world.BlockType) bool {
	def, ok := Blocks[t]
	return ok && def.IsSolid
}

// LoadModels attaches model geometry to every registered block. Blocks whose model
// cannot be loaded keep no elements; all failures are combined into the returned error
// after every block was tried.
func LoadModels(loader *blockmodel.Loader) error {
	log := logger.Named("registry")
	var errs error
	for _, id := range slices.Sorted(maps.Keys(Blocks)) {
		def := Blocks[id]
		if def.ID == world.BlockTypeAir {
			continue
		}
		if err := loadModel(loader, def); err != nil {
			log.Warn("failed to load block model", zap.String("block", def.Name), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func loadModel(loader *blockmodel.Loader, def *BlockDefinition) error {
	bs, err := loader.LoadBlockState(def.Name)
	if err != nil {
		return err
	}

	var variant blockmodel.Variant
	if v, ok := bs.Variants[""]; ok && len(v) > 0 {
		variant = v[0]
	} else if v, ok := bs.Variants["normal"]; ok && len(v) > 0 {
		variant = v[0]
	} else {
		// first key alphabetically keeps the choice deterministic
		keys := slices.Sorted(maps.Keys(bs.Variants))
		if len(keys) > 0 && len(bs.Variants[keys[0]]) > 0 {
			variant = bs.Variants[keys[0]][0]
		}
	}
	if variant.Model == "" {
		return fmt.Errorf("blockstate %s has no model", def.Name)
	}

	model, err := loader.LoadModel(variant.Model)
	if err != nil {
		return fmt.Errorf("block %s: %w", def.Name, err)
	}

	def.Model = variant.Model
	def.ModelY = variant.Y
	def.Elements = model.Elements
	def.AmbientOcclusion = model.HasOcclusion()
	def.Particle = blockmodel.ResolveTexture("#particle", model)

	// If ANY element is a full cube, the block hides its neighbours' faces.
	def.IsSolid = slices.ContainsFunc(model.Elements, blockmodel.Element.IsFullCube)
	return nil
}

func init() {
	RegisterBlock(&BlockDefinition{ID: world.BlockTypeAir, Name: "air"})
	RegisterBlock(&BlockDefinition{ID: world.BlockTypeStone, Name: "stone", IsSolid: true})
	RegisterBlock(&BlockDefinition{ID: world.BlockTypePlanksOak, Name: "oak_planks", IsSolid: true})

	simple := map[world.BlockType]int{
		world.BlockTypeBarrel:    inventory.BarrelSize,
		world.BlockTypeHopper:    inventory.HopperSize,
		world.BlockTypeDispenser: inventory.DropperSize,
		world.BlockTypeDropper:   inventory.DropperSize,
		world.BlockTypeCrafter:   inventory.CrafterSize,
	}
	for id, size := range simple {
		RegisterBlock(&BlockDefinition{
			ID:            id,
			Name:          id.String(),
			Family:        FamilySimple,
			Props:         PropHasItems,
			InventorySize: size,
			IsSolid:       id != world.BlockTypeHopper,
			Orientable:    id == world.BlockTypeDispenser || id == world.BlockTypeDropper || id == world.BlockTypeCrafter,
		})
	}

	for _, id := range []world.BlockType{world.BlockTypeFurnace, world.BlockTypeBlastFurnace, world.BlockTypeSmoker} {
		RegisterBlock(&BlockDefinition{
			ID:            id,
			Name:          id.String(),
			Family:        FamilyFurnace,
			Props:         PropHasInput | PropHasFuel,
			InventorySize: inventory.FurnaceSize,
			IsSolid:       true,
			Orientable:    true,
		})
	}

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeDecoratedPot,
		Name:          "decorated_pot",
		Family:        FamilyPot,
		Props:         PropHasItems,
		InventorySize: inventory.PotSize,
	})

	for _, id := range []world.BlockType{
		world.BlockTypeChest,
		world.BlockTypeTrappedChest,
		world.BlockTypeCopperChest,
		world.BlockTypeExposedCopperChest,
		world.BlockTypeWeatheredCopperChest,
		world.BlockTypeOxidizedCopperChest,
	} {
		RegisterBlock(&BlockDefinition{
			ID:            id,
			Name:          id.String(),
			Family:        FamilyChest,
			Props:         PropHasItems,
			InventorySize: inventory.ChestSize,
			Orientable:    true,
		})
	}
}
