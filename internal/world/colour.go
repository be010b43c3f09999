package world

// Colour is an RGBA pixel value, one byte per channel.
type Colour struct {
	R, G, B, A uint8
}

// RGB builds a fully opaque colour.
func RGB(r, g, b uint8) Colour {
	return Colour{R: r, G: g, B: b, A: 255}
}

// The sandbox palette.
var (
	White      = RGB(255, 255, 255)
	Green      = RGB(40, 255, 40)
	Red        = RGB(255, 40, 40)
	Black      = RGB(0, 0, 0)
	Grey       = RGB(44, 44, 44)
	LightGrey  = RGB(65, 65, 65)
	DarkGrey   = RGB(20, 20, 20)
	Background = Grey
)

// AsUint32 packs the colour as 0xRRGGBBAA.
func (c Colour) AsUint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// FromUint32 unpacks a 0xRRGGBBAA value.
func FromUint32(v uint32) Colour {
	return Colour{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
