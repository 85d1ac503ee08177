package tensor

import "testing"

func TestIsContiguous(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		strides  Strides
		expected bool
	}{
		{"scalar", Shape{}, Strides{}, true},
		{"1d", Shape{6}, Strides{1}, true},
		{"2d row-major", Shape{2, 3}, Strides{3, 1}, true},
		{"2d transposed", Shape{3, 2}, Strides{1, 3}, false},
		{"3d row-major", Shape{2, 3, 4}, Strides{12, 4, 1}, true},
		{"inner gap", Shape{2, 2}, Strides{3, 1}, false},
		{"size-1 axis ignores stride", Shape{2, 1, 3}, Strides{3, 7, 1}, true},
		{"leading size-1 ignores stride", Shape{1, 6}, Strides{0, 1}, true},
		{"zero stride broadcast", Shape{3, 4}, Strides{1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isContiguous(tt.shape, tt.strides); got != tt.expected {
				t.Errorf("isContiguous(%v, %v) = %v, want %v", tt.shape, tt.strides, got, tt.expected)
			}
		})
	}
}

func TestViewStrides(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		strides  Strides
		newShape Shape
		want     Strides
		ok       bool
	}{
		{
			name:  "split contiguous 1d",
			shape: Shape{6}, strides: Strides{1},
			newShape: Shape{2, 3},
			want:     Strides{3, 1}, ok: true,
		},
		{
			name:  "merge contiguous 2d",
			shape: Shape{2, 3}, strides: Strides{3, 1},
			newShape: Shape{6},
			want:     Strides{1}, ok: true,
		},
		{
			name:  "regroup 3d",
			shape: Shape{2, 3, 4}, strides: Strides{12, 4, 1},
			newShape: Shape{6, 4},
			want:     Strides{4, 1}, ok: true,
		},
		{
			name:  "split within strided outer run",
			shape: Shape{6, 2}, strides: Strides{2, 1},
			newShape: Shape{2, 3, 2},
			want:     Strides{6, 2, 1}, ok: true,
		},
		{
			name:  "transposed dims are not collapsible",
			shape: Shape{3, 2}, strides: Strides{1, 3},
			newShape: Shape{6},
			want:     nil, ok: false,
		},
		{
			name:  "narrowed inner dim leaves gaps",
			shape: Shape{2, 2}, strides: Strides{3, 1},
			newShape: Shape{4},
			want:     nil, ok: false,
		},
		{
			name:  "zero-stride broadcast must copy",
			shape: Shape{3, 4}, strides: Strides{1, 0},
			newShape: Shape{12},
			want:     nil, ok: false,
		},
		{
			name:  "size-1 source axes are stride-agnostic",
			shape: Shape{2, 1, 3}, strides: Strides{3, 99, 1},
			newShape: Shape{6},
			want:     Strides{1}, ok: true,
		},
		{
			name:  "transpose around size-1 axis still merges",
			shape: Shape{1, 2, 3}, strides: Strides{0, 3, 1},
			newShape: Shape{6, 1},
			want:     Strides{1, 1}, ok: true,
		},
		{
			name:  "insert size-1 output axes",
			shape: Shape{6}, strides: Strides{1},
			newShape: Shape{1, 6, 1},
			want:     Strides{6, 1, 1}, ok: true,
		},
		{
			name:  "non-contiguous run kept whole",
			shape: Shape{3, 2}, strides: Strides{1, 3},
			newShape: Shape{3, 2},
			want:     Strides{1, 3}, ok: true,
		},
		{
			name:  "scalar to 1",
			shape: Shape{}, strides: Strides{},
			newShape: Shape{1},
			want:     Strides{1}, ok: true,
		},
		{
			name:  "all degenerate source",
			shape: Shape{1, 1}, strides: Strides{4, 9},
			newShape: Shape{1},
			want:     Strides{1}, ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := viewStrides(tt.shape, tt.strides, tt.newShape)
			if ok != tt.ok {
				t.Fatalf("viewStrides(%v, %v, %v) ok = %v, want %v",
					tt.shape, tt.strides, tt.newShape, ok, tt.ok)
			}
			if tt.ok {
				assertEqualStrides(t, tt.want, got, tt.name)
			}
		})
	}
}

func TestAddressBounds(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		shape   Shape
		strides Strides
		lo, hi  int
	}{
		{"contiguous", 0, Shape{2, 3}, Strides{3, 1}, 0, 5},
		{"with offset", 4, Shape{2}, Strides{1}, 4, 5},
		{"strided", 0, Shape{3}, Strides{2}, 0, 4},
		{"zero stride", 1, Shape{5}, Strides{0}, 1, 1},
		{"negative stride", 5, Shape{3}, Strides{-2}, 1, 5},
		{"scalar", 2, Shape{}, Strides{}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := addressBounds(tt.offset, tt.shape, tt.strides)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("addressBounds(%d, %v, %v) = (%d, %d), want (%d, %d)",
					tt.offset, tt.shape, tt.strides, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}
