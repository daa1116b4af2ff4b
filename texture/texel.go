/*
NAME
  texel.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package texture implements 2-D texture filtering: colour-encoded texel
// storage, wrap modes, and nearest/bilinear/bicubic sampling, with every
// native format normalised to a common linear-float RGBA for filtering.
package texture

import (
	"fmt"
	"math"
)

// ComponentType is the wire representation of a single texel component.
type ComponentType int

const (
	U8 ComponentType = iota
	U16
	F16
	F32
)

func (c ComponentType) sizeBytes() int {
	switch c {
	case U8:
		return 1
	case U16, F16:
		return 2
	case F32:
		return 4
	default:
		panic("texture: unknown ComponentType")
	}
}

// PixelLayout names the channel layout of a texel.
type PixelLayout int

const (
	LayoutL PixelLayout = iota
	LayoutLA
	LayoutRGB
	LayoutRGBA
)

func (l PixelLayout) Components() int {
	switch l {
	case LayoutL:
		return 1
	case LayoutLA:
		return 2
	case LayoutRGB:
		return 3
	case LayoutRGBA:
		return 4
	default:
		panic("texture: unknown PixelLayout")
	}
}

// RGBA is a linear-space floating point colour with alpha.
type RGBA struct{ R, G, B, A float64 }

// Storage is a packed 2-D array of pixels. The (layout, component) pair is
// fixed at construction; raw data is stored row-major, no padding.
type Storage struct {
	W, H      int
	Layout    PixelLayout
	Component ComponentType
	Encoding  Encoding
	Data      []byte
}

// NewStorage allocates a zeroed Storage of the given dimensions/format.
func NewStorage(w, h int, layout PixelLayout, comp ComponentType, enc Encoding) *Storage {
	c := layout.Components()
	size := w * h * c * comp.sizeBytes()
	return &Storage{W: w, H: h, Layout: layout, Component: comp, Encoding: enc, Data: make([]byte, size)}
}

// SizeBytes returns w*h*c*sizeof(component), the storage's invariant size.
func (s *Storage) SizeBytes() int { return len(s.Data) }

func (s *Storage) texelOffset(x, y int) int {
	c := s.Layout.Components()
	cs := s.Component.sizeBytes()
	return (y*s.W + x) * c * cs
}

// readComponent reads the raw component at (x,y,channel) as a float in
// [0,1] for integer formats, or its native value for float formats.
func (s *Storage) readComponent(x, y, ch int) float64 {
	off := s.texelOffset(x, y) + ch*s.Component.sizeBytes()
	switch s.Component {
	case U8:
		return float64(s.Data[off]) / 255.0
	case U16:
		v := uint16(s.Data[off]) | uint16(s.Data[off+1])<<8
		return float64(v) / 65535.0
	case F16:
		v := uint16(s.Data[off]) | uint16(s.Data[off+1])<<8
		return float64(float16ToFloat32(v))
	case F32:
		bits := uint32(s.Data[off]) | uint32(s.Data[off+1])<<8 | uint32(s.Data[off+2])<<16 | uint32(s.Data[off+3])<<24
		return float64(math.Float32frombits(bits))
	default:
		panic("texture: unknown ComponentType")
	}
}

// WriteTexel writes a native texel, converting from a linear RGBA using
// Encoding.FromLinear, matching the pixel layout's channel count.
func (s *Storage) WriteTexel(x, y int, c RGBA) {
	vals := s.encodeToLayout(c)
	off := s.texelOffset(x, y)
	cs := s.Component.sizeBytes()
	for i, v := range vals {
		writeComponent(s.Data[off+i*cs:off+(i+1)*cs], s.Component, v)
	}
}

func (s *Storage) encodeToLayout(c RGBA) []float64 {
	switch s.Layout {
	case LayoutL:
		return []float64{s.Encoding.FromLinear(c.R)}
	case LayoutLA:
		return []float64{s.Encoding.FromLinear(c.R), c.A}
	case LayoutRGB:
		return []float64{s.Encoding.FromLinear(c.R), s.Encoding.FromLinear(c.G), s.Encoding.FromLinear(c.B)}
	case LayoutRGBA:
		return []float64{s.Encoding.FromLinear(c.R), s.Encoding.FromLinear(c.G), s.Encoding.FromLinear(c.B), c.A}
	default:
		panic("texture: unknown PixelLayout")
	}
}

func writeComponent(dst []byte, comp ComponentType, v float64) {
	switch comp {
	case U8:
		dst[0] = byte(clamp01(v)*255.0 + 0.5)
	case U16:
		u := uint16(clamp01(v)*65535.0 + 0.5)
		dst[0], dst[1] = byte(u), byte(u>>8)
	case F16:
		u := float32ToFloat16(float32(v))
		dst[0], dst[1] = byte(u), byte(u>>8)
	case F32:
		bits := math.Float32bits(float32(v))
		dst[0], dst[1], dst[2], dst[3] = byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24)
	default:
		panic("texture: unknown ComponentType")
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// layoutConversion converts the native (layout, raw component
// readings) into a common RGBA, applying the colour encoding to colour
// channels but never to alpha.
func (s *Storage) layoutConversion(x, y int) RGBA {
	switch s.Layout {
	case LayoutL:
		l := s.Encoding.ToLinear(s.readComponent(x, y, 0))
		return RGBA{R: l, G: l, B: l, A: 1}
	case LayoutLA:
		l := s.Encoding.ToLinear(s.readComponent(x, y, 0))
		a := s.readComponent(x, y, 1)
		return RGBA{R: l, G: l, B: l, A: a}
	case LayoutRGB:
		return RGBA{
			R: s.Encoding.ToLinear(s.readComponent(x, y, 0)),
			G: s.Encoding.ToLinear(s.readComponent(x, y, 1)),
			B: s.Encoding.ToLinear(s.readComponent(x, y, 2)),
			A: 1,
		}
	case LayoutRGBA:
		return RGBA{
			R: s.Encoding.ToLinear(s.readComponent(x, y, 0)),
			G: s.Encoding.ToLinear(s.readComponent(x, y, 1)),
			B: s.Encoding.ToLinear(s.readComponent(x, y, 2)),
			A: s.readComponent(x, y, 3),
		}
	default:
		panic(fmt.Sprintf("texture: unknown PixelLayout %v", s.Layout))
	}
}
