/*
NAME
  texture_test.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package texture

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func checkerStorage(w, h int) *Storage {
	s := NewStorage(w, h, LayoutL, U8, LinearEncoding)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 0.0
			if (x+y)%2 == 0 {
				v = 1.0
			}
			s.WriteTexel(x, y, RGBA{R: v, G: v, B: v, A: 1})
		}
	}
	return s
}

func TestStorageRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		layout PixelLayout
		comp   ComponentType
	}{
		{"L/U8", LayoutL, U8},
		{"LA/U16", LayoutLA, U16},
		{"RGB/F16", LayoutRGB, F16},
		{"RGBA/F32", LayoutRGBA, F32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStorage(2, 2, tt.layout, tt.comp, LinearEncoding)
			want := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
			s.WriteTexel(0, 0, want)
			got := s.layoutConversion(0, 0)
			tol := 0.02
			if tt.comp == U8 {
				tol = 0.01
			}
			approx := cmpopts.EquateApprox(0, tol)
			if diff := cmp.Diff(want.R, got.R, approx); diff != "" {
				t.Errorf("R mismatch (-want +got):\n%s", diff)
			}
			if tt.layout == LayoutRGB || tt.layout == LayoutRGBA {
				if diff := cmp.Diff(want.B, got.B, approx); diff != "" {
					t.Errorf("B mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestWrapModes(t *testing.T) {
	tests := []struct {
		name    string
		x, dim  int
		mode    WrapMode
		wantIdx int
		wantOOB bool
	}{
		{"repeat negative", -1, 4, WrapRepeat, 3, false},
		{"repeat over", 5, 4, WrapRepeat, 1, false},
		{"clamp negative", -3, 4, WrapClamp, 0, false},
		{"clamp over", 9, 4, WrapClamp, 3, false},
		{"mirror negative", -1, 4, WrapMirror, 0, false},
		{"mirror over", 4, 4, WrapMirror, 3, false},
		{"black oob", 4, 4, WrapBlack, 0, true},
		{"white oob", -1, 4, WrapWhite, 0, true},
		{"in bounds", 2, 4, WrapClamp, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, oob := applyWrap(tt.x, tt.dim, tt.mode)
			if oob != tt.wantOOB {
				t.Fatalf("oob = %v, want %v", oob, tt.wantOOB)
			}
			if !oob && idx != tt.wantIdx {
				t.Errorf("idx = %v, want %v", idx, tt.wantIdx)
			}
		})
	}
}

func TestSentinelWrapModes(t *testing.T) {
	s := NewStorage(2, 2, LayoutRGB, U8, LinearEncoding)
	tex := New(s, Config{Filter: Nearest, WrapU: WrapWhite, WrapV: WrapWhite})
	c := tex.texel(-1, 0)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("white wrap sentinel = %+v, want white", c)
	}

	tex2 := New(s, Config{Filter: Nearest, WrapU: WrapBlack, WrapV: WrapBlack})
	c2 := tex2.texel(-1, 0)
	if c2.R != 0 || c2.G != 0 || c2.B != 0 {
		t.Errorf("black wrap sentinel = %+v, want black", c2)
	}
}

func TestIsConstant(t *testing.T) {
	s := NewStorage(4, 4, LayoutL, U8, LinearEncoding)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.WriteTexel(x, y, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1})
		}
	}
	tex := New(s, Config{Filter: Nearest, WrapU: WrapClamp, WrapV: WrapClamp})
	if !tex.IsConstant() {
		t.Error("IsConstant() = false, want true for a uniform texture")
	}

	checker := New(checkerStorage(4, 4), Config{Filter: Nearest, WrapU: WrapClamp, WrapV: WrapClamp})
	if checker.IsConstant() {
		t.Error("IsConstant() = true, want false for a checkerboard texture")
	}
}

func TestSampleTapCounts(t *testing.T) {
	tests := []struct {
		name     string
		filter   FilterKind
		wantTaps int
	}{
		{"nearest", Nearest, 1},
		{"bilinear", Bilinear, 4},
		{"bicubic", Bicubic, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTaps int
			OnBitmapFilter = func(taps int, _ time.Duration) { gotTaps = taps }
			defer func() { OnBitmapFilter = nil }()

			tex := New(checkerStorage(8, 8), Config{Filter: tt.filter, WrapU: WrapRepeat, WrapV: WrapRepeat, ClampOutput: true})
			tex.Sample(0.5, 0.5)
			if gotTaps != tt.wantTaps {
				t.Errorf("taps = %v, want %v", gotTaps, tt.wantTaps)
			}
		})
	}
}

func TestSampleClampsOutput(t *testing.T) {
	tex := New(checkerStorage(8, 8), Config{Filter: Bicubic, WrapU: WrapRepeat, WrapV: WrapRepeat, ClampOutput: true})
	c := tex.Sample(0.5, 0.5)
	if c.R < 0 || c.R > 1 {
		t.Errorf("Sample().R = %v, want in [0,1]", c.R)
	}
}

func TestBilinearMatchesCornersAtTexelCentres(t *testing.T) {
	s := NewStorage(2, 2, LayoutL, F32, LinearEncoding)
	s.WriteTexel(0, 0, RGBA{R: 0, A: 1})
	s.WriteTexel(1, 0, RGBA{R: 1, A: 1})
	s.WriteTexel(0, 1, RGBA{R: 0, A: 1})
	s.WriteTexel(1, 1, RGBA{R: 1, A: 1})
	tex := New(s, Config{Filter: Bilinear, WrapU: WrapClamp, WrapV: WrapClamp})

	u := (0.0 + 0.5) / 2.0
	v := 1 - (0.0+0.5)/2.0
	c := tex.Sample(u, v)
	if diff := cmp.Diff(0.0, c.R, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Sample at texel centre (0,0) mismatch (-want +got):\n%s", diff)
	}
}
