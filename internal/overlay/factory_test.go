package overlay

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
)

const eps = 1e-4

var testSprite = FullSprite(IndicatorSprite)

func builders() map[string][]Quad {
	return map[string][]Quad{
		"standard": StandardOverlay(testSprite),
		"bottom":   BottomOverlay(testSprite),
		"pot":      PotOverlay(testSprite),
		"chest":    ChestOverlay(testSprite),
		"double":   DoubleChestOverlay(testSprite),
	}
}

func TestOverlayQuadCount(t *testing.T) {
	for name, quads := range builders() {
		if len(quads) != QuadsPerOverlay {
			t.Errorf("%s: got %d quads, want %d", name, len(quads), QuadsPerOverlay)
		}
		for i, q := range quads {
			if q.Sprite != IndicatorSprite {
				t.Errorf("%s[%d]: sprite %q", name, i, q.Sprite)
			}
		}
	}
}

func TestOverlayTintAndCulling(t *testing.T) {
	for _, q := range StandardOverlay(testSprite) {
		if q.TintIndex != TintIndicator {
			t.Fatalf("standard tint = %d", q.TintIndex)
		}
		if q.CullFace != q.Face {
			t.Fatalf("standard quad on %v culled by %v", q.Face, q.CullFace)
		}
	}
	for _, q := range BottomOverlay(testSprite) {
		if q.TintIndex != TintFuel {
			t.Fatalf("bottom tint = %d", q.TintIndex)
		}
	}
	for _, name := range []string{"pot", "chest", "double"} {
		for _, q := range builders()[name] {
			if q.CullFace != world.FaceNone {
				t.Fatalf("%s quad has cull face %v", name, q.CullFace)
			}
			if q.TintIndex != TintIndicator {
				t.Fatalf("%s tint = %d", name, q.TintIndex)
			}
		}
	}
}

func TestOverlayFaceLayout(t *testing.T) {
	want := []world.BlockFace{
		world.FaceTop, world.FaceTop, world.FaceTop, world.FaceTop,
		world.FaceNorth, world.FaceSouth, world.FaceWest, world.FaceEast,
	}
	for name, quads := range builders() {
		if name == "bottom" {
			continue
		}
		for i, q := range quads {
			if q.Face != want[i] {
				t.Errorf("%s[%d]: face %v, want %v", name, i, q.Face, want[i])
			}
		}
	}
	for i, q := range BottomOverlay(testSprite)[:4] {
		if q.Face != world.FaceBottom {
			t.Errorf("bottom[%d]: face %v", i, q.Face)
		}
	}
}

func TestOverlayWindingMatchesFace(t *testing.T) {
	for name, quads := range builders() {
		for i, q := range quads {
			if !q.Normal().ApproxEqualThreshold(q.Face.Normal(), eps) {
				t.Errorf("%s[%d]: normal %v, want %v", name, i, q.Normal(), q.Face.Normal())
			}
		}
	}
}

func TestOverlayUVOrder(t *testing.T) {
	want := [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for name, quads := range builders() {
		for i, q := range quads {
			if q.UVs != want {
				t.Errorf("%s[%d]: uvs %v", name, i, q.UVs)
			}
		}
	}
}

func TestOverlayUVUsesSpriteRegion(t *testing.T) {
	s := Sprite{Name: "x", U0: 0.5, V0: 0.25, U1: 0.75, V1: 0.5}
	q := StandardOverlay(s)[0]
	want := [4]mgl32.Vec2{{0.5, 0.25}, {0.5, 0.5}, {0.75, 0.5}, {0.75, 0.25}}
	if q.UVs != want {
		t.Fatalf("uvs = %v, want %v", q.UVs, want)
	}
}

func TestStandardOverlayCoordinates(t *testing.T) {
	top := StandardOverlay(testSprite)[0]
	for _, v := range top.Vertices {
		if !mgl32.FloatEqualThreshold(v.Y(), 16.02/16, eps) {
			t.Fatalf("top rim y = %v", v.Y())
		}
	}
	north := StandardOverlay(testSprite)[4]
	for _, v := range north.Vertices {
		if !mgl32.FloatEqualThreshold(v.Z(), -0.01/16, eps) {
			t.Fatalf("north strip z = %v", v.Z())
		}
		if v.Y() < 15.0/16-eps {
			t.Fatalf("north strip reaches y = %v", v.Y())
		}
	}
}

func TestRotateQuadsYIdentity(t *testing.T) {
	quads := StandardOverlay(testSprite)
	for _, deg := range []int{0, 360, -360, 720} {
		out := RotateQuadsY(quads, deg)
		if &out[0] != &quads[0] {
			t.Errorf("RotateQuadsY(%d) copied the input", deg)
		}
	}
}

func sameQuads(t *testing.T, got, want []Quad) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d quads, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i].Vertices {
			if !got[i].Vertices[j].ApproxEqualThreshold(want[i].Vertices[j], eps) {
				t.Fatalf("quad %d vertex %d: %v != %v", i, j, got[i].Vertices[j], want[i].Vertices[j])
			}
		}
		if got[i].Face != want[i].Face {
			t.Fatalf("quad %d face %v != %v", i, got[i].Face, want[i].Face)
		}
		if got[i].CullFace != want[i].CullFace {
			t.Fatalf("quad %d cull face %v != %v", i, got[i].CullFace, want[i].CullFace)
		}
	}
}

func TestRotateQuadsYFullTurn(t *testing.T) {
	quads := DoubleChestOverlay(testSprite)
	out := quads
	for range 4 {
		out = RotateQuadsY(out, 90)
	}
	sameQuads(t, out, quads)
}

func TestRotateQuadsYQuarterThenThreeQuarters(t *testing.T) {
	for name, quads := range builders() {
		t.Run(name, func(t *testing.T) {
			sameQuads(t, RotateQuadsY(RotateQuadsY(quads, 90), 270), quads)
		})
	}
}

func TestRotateQuadsYDoesNotMutateInput(t *testing.T) {
	quads := StandardOverlay(testSprite)
	before := quads[4]
	RotateQuadsY(quads, 90)
	if quads[4] != before {
		t.Fatal("input quad changed")
	}
}

func TestRotateQuadsYTurnsClockwise(t *testing.T) {
	quads := StandardOverlay(testSprite)
	out := RotateQuadsY(quads, 90)
	// north strip ends up on the east side
	if out[4].Face != world.FaceEast || out[4].CullFace != world.FaceEast {
		t.Fatalf("north strip rotated to %v/%v", out[4].Face, out[4].CullFace)
	}
	for _, v := range out[4].Vertices {
		if v.X() < 1 {
			t.Fatalf("rotated strip vertex %v not east of the block", v)
		}
	}
	for i, q := range out {
		if !q.Normal().ApproxEqualThreshold(q.Face.Normal(), eps) {
			t.Errorf("rotated quad %d: normal %v, face %v", i, q.Normal(), q.Face)
		}
	}
	if got := RotateQuadsY(quads, -90)[4].Face; got != world.FaceWest {
		t.Fatalf("-90 turned north to %v", got)
	}
}

func TestDoubleChestRotationFollowsNeighbour(t *testing.T) {
	base := DoubleChestOverlay(testSprite)
	for _, facing := range world.HorizontalFaces {
		quads := RotateQuadsY(base, FacingRotation(facing))
		// the left half's partner sits clockwise of its facing
		off := facing.ClockWise().Offset()
		var reach float32
		for _, q := range quads {
			for _, v := range q.Vertices {
				d := (v.X()-0.5)*float32(off[0]) + (v.Z()-0.5)*float32(off[2])
				reach = max(reach, d)
			}
		}
		if reach < 1.4 {
			t.Errorf("facing %v: overlay reaches %v towards the partner", facing, reach)
		}
	}
}

func TestFacingRotation(t *testing.T) {
	want := map[world.BlockFace]int{
		world.FaceNorth: 0,
		world.FaceEast:  90,
		world.FaceSouth: 180,
		world.FaceWest:  270,
		world.FaceTop:   0,
	}
	for f, deg := range want {
		if got := FacingRotation(f); got != deg {
			t.Errorf("FacingRotation(%v) = %d, want %d", f, got, deg)
		}
	}
}
