package waves

import "fmt"

// Size is the extent of the view the shapes are drawn into.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// Center returns the center of a view of this size anchored at the origin.
func (sz Size) Center() Point {
	return Point{X: sz.Width / 2, Y: sz.Height / 2}
}

// Empty reports whether either side is not positive and finite. Geometry is
// never computed for empty sizes.
func (sz Size) Empty() bool {
	return !finitePositive(sz.Width) || !finitePositive(sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}
