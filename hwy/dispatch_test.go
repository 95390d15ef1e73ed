package hwy

import "testing"

func TestCurrentWidth(t *testing.T) {
	switch w := CurrentWidth(); w {
	case 16, 32, 64:
	default:
		t.Fatalf("CurrentWidth: got %d, want 16, 32 or 64", w)
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName: got unknown for level %d", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv(%q): got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestLanesFor(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"128/float32", LanesFor[float32](FixedTag128[float32]{}), 4},
		{"256/float32", LanesFor[float32](FixedTag256[float32]{}), 8},
		{"512/float64", LanesFor[float64](FixedTag512[float64]{}), 8},
		{"256/uint8", LanesFor[uint8](FixedTag256[uint8]{}), 32},
		{"nil/int32", LanesFor[int32](nil), MaxLanes[int32]()},
		{"scalable/int16", LanesFor[int16](ScalableTag[int16]{}), MaxLanes[int16]()},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("LanesFor %s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if n := (FixedTag256[float64]{}).MaxLanes(); n != 4 {
		t.Errorf("FixedTag256[float64].MaxLanes: got %d, want 4", n)
	}
}
