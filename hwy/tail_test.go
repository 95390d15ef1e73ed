package hwy

import "testing"

func TestFirstN(t *testing.T) {
	tests := []struct {
		lanes, count, want int
	}{
		{8, 3, 3},
		{8, 0, 0},
		{8, -2, 0},
		{4, 9, 4},
	}
	for _, tt := range tests {
		m := FirstN[float32](tt.lanes, tt.count)
		if m.NumLanes() != tt.lanes {
			t.Errorf("FirstN(%d, %d): got %d lanes", tt.lanes, tt.count, m.NumLanes())
		}
		if got := m.CountTrue(); got != tt.want {
			t.Errorf("FirstN(%d, %d): got %d active, want %d", tt.lanes, tt.count, got, tt.want)
		}
		for i := range tt.want {
			if !m.GetBit(i) {
				t.Errorf("FirstN(%d, %d): lane %d inactive", tt.lanes, tt.count, i)
			}
		}
	}
}

func TestTailMask(t *testing.T) {
	m := TailMask[float32](1)
	if m.NumLanes() != MaxLanes[float32]() {
		t.Errorf("TailMask: got %d lanes, want %d", m.NumLanes(), MaxLanes[float32]())
	}
	if !m.AnyTrue() || m.CountTrue() != 1 {
		t.Errorf("TailMask(1): got %d active", m.CountTrue())
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[float32]()
	size := 3*lanes + 1

	var full []int
	tailOffset, tailCount := -1, -1
	ProcessWithTail[float32](size,
		func(offset int) { full = append(full, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)

	if len(full) != 3 {
		t.Fatalf("got %d full vectors, want 3", len(full))
	}
	for i, off := range full {
		if off != i*lanes {
			t.Errorf("full vector %d: offset %d, want %d", i, off, i*lanes)
		}
	}
	if tailOffset != 3*lanes || tailCount != 1 {
		t.Errorf("tail: got (%d, %d), want (%d, 1)", tailOffset, tailCount, 3*lanes)
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := MaxLanes[int32]()
	if got := AlignedSize[int32](lanes + 1); got != 2*lanes {
		t.Errorf("AlignedSize(%d): got %d, want %d", lanes+1, got, 2*lanes)
	}
	if !IsAligned[int32](2 * lanes) {
		t.Errorf("IsAligned(%d): got false", 2*lanes)
	}
	if IsAligned[int32](lanes + 1) {
		t.Errorf("IsAligned(%d): got true", lanes+1)
	}
}
