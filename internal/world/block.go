package world

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypePlanksOak
	BlockTypeChest
	BlockTypeTrappedChest
	BlockTypeCopperChest
	BlockTypeExposedCopperChest
	BlockTypeWeatheredCopperChest
	BlockTypeOxidizedCopperChest
	BlockTypeBarrel
	BlockTypeHopper
	BlockTypeDispenser
	BlockTypeDropper
	BlockTypeCrafter
	BlockTypeFurnace
	BlockTypeBlastFurnace
	BlockTypeSmoker
	BlockTypeDecoratedPot
)

var blockTypeNames = map[BlockType]string{
	BlockTypeAir:                  "air",
	BlockTypeStone:                "stone",
	BlockTypePlanksOak:            "oak_planks",
	BlockTypeChest:                "chest",
	BlockTypeTrappedChest:         "trapped_chest",
	BlockTypeCopperChest:          "copper_chest",
	BlockTypeExposedCopperChest:   "exposed_copper_chest",
	BlockTypeWeatheredCopperChest: "weathered_copper_chest",
	BlockTypeOxidizedCopperChest:  "oxidized_copper_chest",
	BlockTypeBarrel:               "barrel",
	BlockTypeHopper:               "hopper",
	BlockTypeDispenser:            "dispenser",
	BlockTypeDropper:              "dropper",
	BlockTypeCrafter:              "crafter",
	BlockTypeFurnace:              "furnace",
	BlockTypeBlastFurnace:         "blast_furnace",
	BlockTypeSmoker:               "smoker",
	BlockTypeDecoratedPot:         "decorated_pot",
}

// String returns the registry name of the block type, or "unknown".
func (t BlockType) String() string {
	if name, ok := blockTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
