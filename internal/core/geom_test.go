package core

import "testing"

func TestScreenBoundsContains(t *testing.T) {
	b := NewScreen(12, 22).Bounds()

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 11, 21, true},
		{"past right", 12, 0, false},
		{"past bottom", 0, 22, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectRightBottom(t *testing.T) {
	r := NewRect(3, 1, 12, 22)
	if r.Right() != 15 || r.Bottom() != 23 {
		t.Errorf("got right %d bottom %d, want 15 and 23", r.Right(), r.Bottom())
	}
}

func TestClampToScreen(t *testing.T) {
	for _, tc := range []struct{ v, want int }{
		{-4, 0}, {0, 0}, {7, 7}, {10, 10}, {25, 10},
	} {
		if got := Clamp(tc.v, 0, 10); got != tc.want {
			t.Errorf("Clamp(%d, 0, 10) = %d, want %d", tc.v, got, tc.want)
		}
	}
}
