package game

import (
	"fmt"
	"strings"

	"container-indicator/internal/container"
	"container-indicator/internal/world"
)

// BlockSummary describes one loaded container as the renderer would see it.
type BlockSummary struct {
	Pos      world.Pos
	State    world.State
	Kind     container.Kind
	Overlays int
}

func (b BlockSummary) String() string {
	var flags []string
	if b.State.HasItems {
		flags = append(flags, "items")
	}
	if b.State.HasInput {
		flags = append(flags, "input")
	}
	if b.State.HasFuel {
		flags = append(flags, "fuel")
	}
	if len(flags) == 0 {
		flags = append(flags, "-")
	}
	return fmt.Sprintf("%-14v %-22s %-8s %-10s overlays=%d",
		b.Pos, b.State.Type, b.State.Facing, strings.Join(flags, ","), b.Overlays)
}

// Summaries lists every loaded container in position order.
func (s *Session) Summaries() []BlockSummary {
	positions := s.World.LoadedBlockEntities()
	out := make([]BlockSummary, 0, len(positions))
	for _, p := range positions {
		st, ok := s.World.State(p)
		if !ok {
			continue
		}
		out = append(out, BlockSummary{
			Pos:      p,
			State:    st,
			Kind:     container.KindOf(st),
			Overlays: len(s.Models.Overlays(st)),
		})
	}
	return out
}
