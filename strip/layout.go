// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// placer places cells one after another along an axis.
type placer interface {
	// place a cell of the given main axis length. A nil widget reserves
	// the space without drawing anything.
	place(length float32, clipped bool, w layout.Widget)
	// bounds returns the union of the cells placed so far.
	bounds() image.Rectangle
}

// cellLayout places cells into the operation list of a layout context.
// Every cell fills the cross axis constraint.
type cellLayout struct {
	gtx     layout.Context
	axis    layout.Axis
	spacing float32

	// cursor is the unrounded main axis position of the next cell.
	cursor float32
	rect   image.Rectangle
}

func newCellLayout(gtx layout.Context, axis layout.Axis, spacing float32) *cellLayout {
	return &cellLayout{gtx: gtx, axis: axis, spacing: spacing}
}

func (c *cellLayout) place(length float32, clipped bool, w layout.Widget) {
	start := round(c.cursor)
	end := round(c.cursor + length)
	c.cursor += length + c.spacing
	main := end - start
	if main < 0 {
		main = 0
	}
	cross := axisCross(c.axis, c.gtx.Constraints.Max)
	size := axisPoint(c.axis, main, cross)
	off := axisPoint(c.axis, start, 0)
	r := image.Rectangle{Min: off, Max: off.Add(size)}
	if c.rect.Empty() {
		c.rect = r
	} else {
		c.rect = c.rect.Union(r)
	}
	if w == nil {
		return
	}
	defer op.Offset(off).Push(c.gtx.Ops).Pop()
	if clipped {
		defer clip.Rect{Max: size}.Push(c.gtx.Ops).Pop()
	}
	gtx := c.gtx
	gtx.Constraints = layout.Constraints{Max: size}
	w(gtx)
}

func (c *cellLayout) bounds() image.Rectangle {
	return c.rect
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func axisPoint(a layout.Axis, main, cross int) image.Point {
	if a == layout.Horizontal {
		return image.Point{X: main, Y: cross}
	} else {
		return image.Point{X: cross, Y: main}
	}
}

func axisMain(a layout.Axis, sz image.Point) int {
	if a == layout.Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a layout.Axis, sz image.Point) int {
	if a == layout.Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
