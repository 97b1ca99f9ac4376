package waves

import "image/color"

// Frame is what a host needs to draw one shape for one render pass.
//
// Path is in the shape's own coordinates and shares storage with the shape;
// it stays valid until the next resize or, for blobs, the next frame.
// Hosts draw Path translated by Translation and fill it with Gradient, which
// is anchored to the view and does not move with the shape.
type Frame struct {
	Path        BezPath
	Translation Vec2
	Gradient    Gradient
	Alpha       float64
}

// Transform returns the transform that moves Path into view space.
func (f Frame) Transform() Affine { return Translate(f.Translation) }

// Transformed returns a copy of Path moved into view space.
func (f Frame) Transformed() BezPath { return f.Path.Transform(f.Transform()) }

// Contains reports whether the view-space point pt is inside the shape.
func (f Frame) Contains(pt Point) bool {
	return f.Path.Contains(pt.Translate(f.Translation.Negate()))
}

// Bounds returns a rectangle in view space containing the shape.
func (f Frame) Bounds() Rect {
	return f.Path.BoundingBox().Translate(f.Translation)
}

// ColorAt returns the fill color at the view-space point pt, including the
// shape's opacity.
func (f Frame) ColorAt(pt Point) color.NRGBA {
	return NRGBA(f.Gradient.At(pt), f.Alpha)
}

// Empty reports whether there is nothing to draw.
func (f Frame) Empty() bool { return len(f.Path) == 0 }
