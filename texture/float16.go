/*
NAME
  float16.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package texture

import "math"

// float16ToFloat32 and float32ToFloat16 implement the IEEE 754 binary16
// conversion. Go has no native float16 type; textures that store f16
// texels (common for HDR albedo/normal maps) decode through this pair.
// float16ToFloat32 is exact, subnormals included. float32ToFloat16
// truncates the mantissa rather than rounding, flushes values below the
// smallest normal half to signed zero, and maps NaN to infinity.
func float16ToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	var bits uint32
	switch {
	case exp == 0 && mant == 0:
		bits = sign << 31
	case exp == 0x1F:
		bits = sign<<31 | 0xFF<<23 | mant<<13
	case exp == 0:
		// Subnormal half -> normalize.
		e := 0
		m := mant
		for m&0x400 == 0 {
			m <<= 1
			e--
		}
		m &= 0x3FF
		bits = sign<<31 | uint32(e+127-15+1)<<23 | m<<13
	default:
		bits = sign<<31 | (exp-15+127)<<23 | mant<<13
	}
	return math.Float32frombits(bits)
}

func float32ToFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23)&0xFF - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case exp <= 0:
		return sign
	case exp >= 0x1F:
		return sign | 0x7C00
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}
