/*
NAME
  wide8.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wide provides portable wide-vector types used by the acceleration
// structure and intersection kernels. Go has no portable cross-platform SIMD
// intrinsics, so these are a scalar-emulation engine matching the interface
// an AVX2/AVX-512 backend would expose: callers write against Lanes8/Lanes4
// and a future build tagged on amd64 could swap in an assembly
// implementation without changing call sites.
package wide

import "math"

// Lanes8 holds 8 independent float64 lanes, the width used throughout the
// BVH8W traversal code (one lane per child octet or per triangle in an
// 8-wide leaf batch).
type Lanes8 [8]float64

// Mask8 is a lane-wise boolean result. Following the source convention, a
// lane is "true" when its sign bit is set (i.e. the stored value is
// negative), not when it is merely nonzero; readers must test with Signbit
// rather than equality.
type Mask8 [8]float64

var trueLane = math.Float64frombits(0xFFFFFFFFFFFFFFFF) // all-ones bit pattern: NaN, negative.
const falseLane = 0.0

func maskFromBool(b bool) float64 {
	if b {
		return trueLane
	}
	return falseLane
}

// Broadcast8 returns a Lanes8 with every lane set to v.
func Broadcast8(v float64) Lanes8 {
	var l Lanes8
	for i := range l {
		l[i] = v
	}
	return l
}

// Load8 copies 8 float64s from a slice into a Lanes8. Panics if src has
// fewer than 8 elements (mirrors an unaligned-load bounds fault).
func Load8(src []float64) Lanes8 {
	var l Lanes8
	copy(l[:], src[:8])
	return l
}

// Store8 writes the 8 lanes of l into dst, which must have length >= 8.
func Store8(dst []float64, l Lanes8) { copy(dst[:8], l[:]) }

func (a Lanes8) Add(b Lanes8) Lanes8 { return zipF8(a, b, func(x, y float64) float64 { return x + y }) }
func (a Lanes8) Sub(b Lanes8) Lanes8 { return zipF8(a, b, func(x, y float64) float64 { return x - y }) }
func (a Lanes8) Mul(b Lanes8) Lanes8 { return zipF8(a, b, func(x, y float64) float64 { return x * y }) }
func (a Lanes8) Div(b Lanes8) Lanes8 { return zipF8(a, b, func(x, y float64) float64 { return x / y }) }

func (a Lanes8) Min(b Lanes8) Lanes8 { return zipF8(a, b, math.Min) }
func (a Lanes8) Max(b Lanes8) Lanes8 { return zipF8(a, b, math.Max) }

func (a Lanes8) Abs() Lanes8   { return mapF8(a, math.Abs) }
func (a Lanes8) Floor() Lanes8 { return mapF8(a, math.Floor) }
func (a Lanes8) Ceil() Lanes8  { return mapF8(a, math.Ceil) }
func (a Lanes8) Sqrt() Lanes8  { return mapF8(a, math.Sqrt) }

// Clamp clamps each lane of a into [lo, hi].
func (a Lanes8) Clamp(lo, hi Lanes8) Lanes8 { return a.Max(lo).Min(hi) }

// Fma computes a*b+c per lane (fused multiply-add).
func Fma(a, b, c Lanes8) Lanes8 {
	var r Lanes8
	for i := range r {
		r[i] = math.FMA(a[i], b[i], c[i])
	}
	return r
}

// Fms computes a*b-c per lane (fused multiply-subtract).
func Fms(a, b, c Lanes8) Lanes8 {
	var r Lanes8
	for i := range r {
		r[i] = math.FMA(a[i], b[i], -c[i])
	}
	return r
}

// BlendImm selects, for each lane i where the i-th bit of imm is set, the
// value from b; otherwise from a. imm is a compile-time-style immediate
// mask in the low 8 bits.
func BlendImm(a, b Lanes8, imm uint8) Lanes8 {
	var r Lanes8
	for i := range r {
		if imm&(1<<uint(i)) != 0 {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

// Blend selects b[i] where m[i] is true (sign bit set), else a[i].
func Blend(a, b Lanes8, m Mask8) Lanes8 {
	var r Lanes8
	for i := range r {
		if math.Signbit(m[i]) {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

// Eq, Lt, Le, Gt, Ge produce bool-mask wide vectors lane-wise.
func (a Lanes8) Eq(b Lanes8) Mask8 { return cmp8(a, b, func(x, y float64) bool { return x == y }) }
func (a Lanes8) Lt(b Lanes8) Mask8 { return cmp8(a, b, func(x, y float64) bool { return x < y }) }
func (a Lanes8) Le(b Lanes8) Mask8 { return cmp8(a, b, func(x, y float64) bool { return x <= y }) }
func (a Lanes8) Gt(b Lanes8) Mask8 { return cmp8(a, b, func(x, y float64) bool { return x > y }) }
func (a Lanes8) Ge(b Lanes8) Mask8 { return cmp8(a, b, func(x, y float64) bool { return x >= y }) }

// HMin, HMax are horizontal reductions across all 8 lanes.
func (a Lanes8) HMin() float64 {
	m := a[0]
	for _, v := range a[1:] {
		m = math.Min(m, v)
	}
	return m
}
func (a Lanes8) HMax() float64 {
	m := a[0]
	for _, v := range a[1:] {
		m = math.Max(m, v)
	}
	return m
}

// Any reports whether any lane of m is set.
func (m Mask8) Any() bool {
	for _, v := range m {
		if math.Signbit(v) {
			return true
		}
	}
	return false
}

// All reports whether every lane of m is set.
func (m Mask8) All() bool {
	for _, v := range m {
		if !math.Signbit(v) {
			return false
		}
	}
	return true
}

// MoveMask packs the sign bits of m into the low 8 bits of a byte, the
// scalar-emulation equivalent of an AVX `movemask` instruction.
func (m Mask8) MoveMask() uint8 {
	var b uint8
	for i, v := range m {
		if math.Signbit(v) {
			b |= 1 << uint(i)
		}
	}
	return b
}

// Lower4 extracts lanes [0,4) as a Lanes4.
func (a Lanes8) Lower4() Lanes4 { return Lanes4{a[0], a[1], a[2], a[3]} }

// Upper4 extracts lanes [4,8) as a Lanes4.
func (a Lanes8) Upper4() Lanes4 { return Lanes4{a[4], a[5], a[6], a[7]} }

// Merge4 combines a lower and upper Lanes4 into a Lanes8.
func Merge4(lo, hi Lanes4) Lanes8 {
	return Lanes8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

func zipF8(a, b Lanes8, f func(x, y float64) float64) Lanes8 {
	var r Lanes8
	for i := range r {
		r[i] = f(a[i], b[i])
	}
	return r
}

func mapF8(a Lanes8, f func(float64) float64) Lanes8 {
	var r Lanes8
	for i := range r {
		r[i] = f(a[i])
	}
	return r
}

func cmp8(a, b Lanes8, f func(x, y float64) bool) Mask8 {
	var r Mask8
	for i := range r {
		r[i] = maskFromBool(f(a[i], b[i]))
	}
	return r
}
