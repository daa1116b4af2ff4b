/*
NAME
  wide4.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wide

import "math"

// Lanes4 holds 4 independent float64 lanes (W=4), used where a query only
// needs half-octet width, e.g. a single AABB's min/max per axis.
type Lanes4 [4]float64

// Mask4 is the Lanes4 analogue of Mask8; same sign-bit convention.
type Mask4 [4]float64

func Broadcast4(v float64) Lanes4 { return Lanes4{v, v, v, v} }

func Load4(src []float64) Lanes4 {
	var l Lanes4
	copy(l[:], src[:4])
	return l
}

func Store4(dst []float64, l Lanes4) { copy(dst[:4], l[:]) }

func (a Lanes4) Add(b Lanes4) Lanes4 { return zipF4(a, b, func(x, y float64) float64 { return x + y }) }
func (a Lanes4) Sub(b Lanes4) Lanes4 { return zipF4(a, b, func(x, y float64) float64 { return x - y }) }
func (a Lanes4) Mul(b Lanes4) Lanes4 { return zipF4(a, b, func(x, y float64) float64 { return x * y }) }
func (a Lanes4) Div(b Lanes4) Lanes4 { return zipF4(a, b, func(x, y float64) float64 { return x / y }) }
func (a Lanes4) Min(b Lanes4) Lanes4 { return zipF4(a, b, math.Min) }
func (a Lanes4) Max(b Lanes4) Lanes4 { return zipF4(a, b, math.Max) }

func (a Lanes4) Abs() Lanes4   { return mapF4(a, math.Abs) }
func (a Lanes4) Floor() Lanes4 { return mapF4(a, math.Floor) }
func (a Lanes4) Ceil() Lanes4  { return mapF4(a, math.Ceil) }
func (a Lanes4) Sqrt() Lanes4  { return mapF4(a, math.Sqrt) }

func (a Lanes4) Clamp(lo, hi Lanes4) Lanes4 { return a.Max(lo).Min(hi) }

func FmaLanes4(a, b, c Lanes4) Lanes4 {
	var r Lanes4
	for i := range r {
		r[i] = math.FMA(a[i], b[i], c[i])
	}
	return r
}

func (a Lanes4) Eq(b Lanes4) Mask4 { return cmp4(a, b, func(x, y float64) bool { return x == y }) }
func (a Lanes4) Lt(b Lanes4) Mask4 { return cmp4(a, b, func(x, y float64) bool { return x < y }) }
func (a Lanes4) Gt(b Lanes4) Mask4 { return cmp4(a, b, func(x, y float64) bool { return x > y }) }

func (a Lanes4) HMin() float64 { return math.Min(math.Min(a[0], a[1]), math.Min(a[2], a[3])) }
func (a Lanes4) HMax() float64 { return math.Max(math.Max(a[0], a[1]), math.Max(a[2], a[3])) }

func (m Mask4) Any() bool {
	for _, v := range m {
		if math.Signbit(v) {
			return true
		}
	}
	return false
}

func (m Mask4) All() bool {
	for _, v := range m {
		if !math.Signbit(v) {
			return false
		}
	}
	return true
}

func zipF4(a, b Lanes4, f func(x, y float64) float64) Lanes4 {
	var r Lanes4
	for i := range r {
		r[i] = f(a[i], b[i])
	}
	return r
}

func mapF4(a Lanes4, f func(float64) float64) Lanes4 {
	var r Lanes4
	for i := range r {
		r[i] = f(a[i])
	}
	return r
}

func cmp4(a, b Lanes4, f func(x, y float64) bool) Mask4 {
	var r Mask4
	for i := range r {
		r[i] = maskFromBool(f(a[i], b[i]))
	}
	return r
}
