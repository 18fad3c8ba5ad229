package overlay

import "github.com/go-gl/mathgl/mgl32"

// TintSource supplies the configured overlay colours as 0xRRGGBB.
type TintSource interface {
	IndicatorColor() uint32
	FuelColor() uint32
}

// TintColor resolves a quad's tint index. Untinted quads are white.
func TintColor(src TintSource, tintIndex int) uint32 {
	switch tintIndex {
	case TintIndicator:
		return src.IndicatorColor() & 0xFFFFFF
	case TintFuel:
		return src.FuelColor() & 0xFFFFFF
	}
	return 0xFFFFFF
}

// RGB converts 0xRRGGBB to a colour vector in 0..1.
func RGB(c uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c>>16&0xFF) / 255,
		float32(c>>8&0xFF) / 255,
		float32(c&0xFF) / 255,
	}
}
