package sim

import "math"

// RGBA is a tint. Renderers map it onto whatever palette they have.
type RGBA struct {
	R, G, B, A uint8
}

// Palette used by the simulation (DawnBringer 32 subset).
var (
	ColorAlmostBlack  = RGBA{0x22, 0x20, 0x34, 0xff}
	ColorWhite        = RGBA{0xff, 0xff, 0xff, 0xff}
	ColorLavenderBlue = RGBA{0xcb, 0xdb, 0xfc, 0xff}
	ColorLightRed     = RGBA{0xd9, 0x57, 0x63, 0xff}
	ColorBlood        = RGBA{0xac, 0x32, 0x32, 0xff}
)

// Role colors.
var (
	PlayerTint   = ColorLavenderBlue
	CrescentTint = ColorAlmostBlack
	ArrowTint    = ColorLightRed
	FlashTint    = ColorWhite
	BloodTint    = ColorBlood
)

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Luma returns the perceived brightness in [0, 255].
func (c RGBA) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// LerpRGBA interpolates every channel from a to b; t is clamped to [0, 1].
func LerpRGBA(a, b RGBA, t float64) RGBA {
	t = math.Max(0, math.Min(1, t))
	return RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
