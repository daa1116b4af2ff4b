/*
NAME
  wrap.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package texture

import "math"

// WrapMode is the closed set of out-of-bounds texel addressing modes.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapMirror
	WrapBlack
	WrapWhite
)

// applyWrap maps an arbitrary integer texel index x into [0,dim) per the
// wrap mode, or reports that the index is out of bounds (for Black/White,
// where the caller substitutes a sentinel texel instead of remapping).
func applyWrap(x, dim int, mode WrapMode) (idx int, oob bool) {
	switch mode {
	case WrapRepeat:
		idx = ((x % dim) + dim) % dim
		return idx, false
	case WrapClamp:
		if x < 0 {
			return 0, false
		}
		if x >= dim {
			return dim - 1, false
		}
		return x, false
	case WrapMirror:
		period := 2 * dim
		m := ((x % period) + period) % period
		if m >= dim {
			m = period - 1 - m
		}
		return m, false
	case WrapBlack, WrapWhite:
		if x < 0 || x >= dim {
			return 0, true
		}
		return x, false
	default:
		panic("texture: unknown WrapMode")
	}
}

// wrapUV applies the analogous continuous-coordinate wrap directly to a
// fractional u in (-inf, inf).
func wrapUV(u float64, mode WrapMode) float64 {
	switch mode {
	case WrapRepeat:
		f := math.Mod(u, 1)
		if f < 0 {
			f += 1
		}
		return f
	case WrapClamp:
		if u < 0 {
			return 0
		}
		if u > 1 {
			return 1
		}
		return u
	case WrapMirror:
		f := math.Mod(u, 2)
		if f < 0 {
			f += 2
		}
		if f > 1 {
			f = 2 - f
		}
		return f
	default:
		return u
	}
}
