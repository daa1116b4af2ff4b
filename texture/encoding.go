/*
NAME
  encoding.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package texture

import "math"

// EncodingKind is the closed set of colour encodings a texel's colour
// channels can be stored in.
type EncodingKind int

const (
	Linear EncodingKind = iota
	Gamma
	SRGB
)

// Encoding pairs an EncodingKind with its gamma exponent, used only by
// EncodingKind == Gamma.
type Encoding struct {
	Kind  EncodingKind
	Gamma float64
}

// LinearEncoding is the identity encoding.
var LinearEncoding = Encoding{Kind: Linear}

// SRGBEncoding is the standard sRGB transfer function.
var SRGBEncoding = Encoding{Kind: SRGB}

// GammaEncoding builds a simple power-law gamma encoding.
func GammaEncoding(g float64) Encoding { return Encoding{Kind: Gamma, Gamma: g} }

// ToLinear converts a stored (encoded) colour-channel sample into linear
// floating point.
func (e Encoding) ToLinear(v float64) float64 {
	switch e.Kind {
	case Linear:
		return v
	case Gamma:
		return math.Pow(v, e.Gamma)
	case SRGB:
		return srgbToLinear(v)
	default:
		panic("texture: unknown EncodingKind")
	}
}

// FromLinear is the inverse of ToLinear.
func (e Encoding) FromLinear(v float64) float64 {
	switch e.Kind {
	case Linear:
		return v
	case Gamma:
		return math.Pow(v, 1/e.Gamma)
	case SRGB:
		return linearToSRGB(v)
	default:
		panic("texture: unknown EncodingKind")
	}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}
