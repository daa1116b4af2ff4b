/*
NAME
  eft.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wide

import "math"

// TwoProd returns {hi, lo} such that a*b == hi+lo exactly (Dekker's
// algorithm via FMA), used by the cross-product-like computations in the
// intersection kernels to recover precision lost in a single double-width
// multiply.
func TwoProd(a, b float64) (hi, lo float64) {
	hi = a * b
	lo = math.FMA(a, b, -hi)
	return hi, lo
}

// TwoSum returns {hi, lo} such that a+b == hi+lo exactly.
func TwoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	bv := hi - a
	lo = (a - (hi - bv)) + (b - bv)
	return hi, lo
}

// DiffProd computes a*b - c*d with a single rounding error via two fused
// multiply-adds (Kahan's algorithm), the building block for a numerically
// stable 3-D cross product.
func DiffProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(-c, d, cd)
	dop := math.FMA(a, b, -cd)
	return dop + err
}

// SumProd computes a*b + c*d with a single rounding error, the dual of
// DiffProd.
func SumProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(c, d, -cd)
	dop := math.FMA(a, b, cd)
	return dop + err
}
