package dds

import (
	"math"
	"testing"
)

func TestPitchAndLinearSizeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		format     Format
		w, h       uint32
		wantPitch  uint32
		wantLinear uint32
	}{
		{name: "bc7-256", format: FormatBC7Unorm, w: 256, h: 256, wantPitch: 1024, wantLinear: 65536},
		{name: "rgba8-256", format: FormatR8G8B8A8Unorm, w: 256, h: 256, wantPitch: 1024, wantLinear: 262144},
		{name: "bc1-4x4", format: FormatBC1Unorm, w: 4, h: 4, wantPitch: 8, wantLinear: 8},
		{name: "bc1-5x7", format: FormatBC1Unorm, w: 5, h: 7, wantPitch: 16, wantLinear: 32},
		{name: "bc1-1x1", format: FormatBC1Unorm, w: 1, h: 1, wantPitch: 8, wantLinear: 8},
		{name: "bc3-0x0", format: FormatBC3Unorm, w: 0, h: 0, wantPitch: 16, wantLinear: 16},
		{name: "rgba8-0x4", format: FormatR8G8B8A8Unorm, w: 0, h: 4, wantPitch: 0, wantLinear: 0},
		{name: "rgba8-4x0", format: FormatR8G8B8A8Unorm, w: 4, h: 0, wantPitch: 16, wantLinear: 0},
		{name: "r1-9x2", format: FormatR1Unorm, w: 9, h: 2, wantPitch: 2, wantLinear: 4},
		{name: "nv12-3x2", format: FormatNV12, w: 3, h: 2, wantPitch: 5, wantLinear: 10},
		{name: "rgba32f-3x3", format: FormatR32G32B32A32Float, w: 3, h: 3, wantPitch: 48, wantLinear: 144},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pitch, linear := PitchAndLinearSize(tc.w, tc.h, tc.format)
			if pitch != tc.wantPitch || linear != tc.wantLinear {
				t.Fatalf("PitchAndLinearSize(%d,%d,%v) = (%d,%d), want (%d,%d)",
					tc.w, tc.h, tc.format, pitch, linear, tc.wantPitch, tc.wantLinear)
			}
		})
	}
}

func TestMipChainSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		w, h   uint32
		mips   uint32
		want   uint64
	}{
		{name: "rgba8-8x8-4", format: FormatR8G8B8A8Unorm, w: 8, h: 8, mips: 4, want: 256 + 64 + 16 + 4},
		{name: "rgba8-8x8-0", format: FormatR8G8B8A8Unorm, w: 8, h: 8, mips: 0, want: 256},
		{name: "rgba8-8x8-1", format: FormatR8G8B8A8Unorm, w: 8, h: 8, mips: 1, want: 256},
		// levels 2 and 3 have zero height after the unclamped shift
		{name: "rgba8-8x2-4", format: FormatR8G8B8A8Unorm, w: 8, h: 2, mips: 4, want: 64 + 16},
		// past the last texel every compressed level still counts one block
		{name: "bc1-8x8-6", format: FormatBC1Unorm, w: 8, h: 8, mips: 6, want: 32 + 8 + 8 + 8 + 8 + 8},
		{name: "rgba8-4x4-max", format: FormatR8G8B8A8Unorm, w: 4, h: 4, mips: math.MaxUint32, want: 64 + 16 + 4},
		{name: "bc7-4x4-max", format: FormatBC7Unorm, w: 4, h: 4, mips: math.MaxUint32, want: uint64(math.MaxUint32) * 16},
		{name: "bc1-0x0-3", format: FormatBC1Unorm, w: 0, h: 0, mips: 3, want: 24},
		{name: "rgba8-0x0-3", format: FormatR8G8B8A8Unorm, w: 0, h: 0, mips: 3, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := mipChainSize(tc.w, tc.h, tc.mips, tc.format); got != tc.want {
				t.Fatalf("mipChainSize = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMaxMipLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h uint32
		want uint32
	}{
		{1, 1, 1},
		{8, 8, 4},
		{8, 2, 2},
		{5, 5, 3},
		{256, 256, 9},
		{0, 16, 0},
	}

	for _, tc := range tests {
		if got := MaxMipLevels(tc.w, tc.h); got != tc.want {
			t.Errorf("MaxMipLevels(%d,%d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}
