package utils

import "testing"

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{name: "center", px: 50, py: 50, want: true},
		{name: "top-left corner", px: 0, py: 0, want: true},
		{name: "bottom-right corner", px: 100, py: 60, want: true},
		{name: "left of rect", px: -1, py: 30, want: false},
		{name: "below rect", px: 50, py: 61, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 0, 0, 100, 60); got != tt.want {
				t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestAnchoredRect(t *testing.T) {
	// 中心锚点：200x100 缩放 0.5 后以 (400, 300) 为中心
	left, top, w, h := AnchoredRect(400, 300, 200, 100, 0.5, 0.5, 0.5, 0.5)
	if left != 350 || top != 275 || w != 100 || h != 50 {
		t.Errorf("unexpected rect (%v, %v, %v, %v)", left, top, w, h)
	}

	// 左上角锚点：位置就是左上角
	left, top, _, _ = AnchoredRect(10, 20, 64, 64, 2, 2, 0, 0)
	if left != 10 || top != 20 {
		t.Errorf("expected top-left (10, 20), got (%v, %v)", left, top)
	}
}
