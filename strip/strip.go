// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/gioextras/extras/sizing"
)

// Builder collects the sizes of a strip before its direction is chosen.
// A Builder lays out a single strip; use New for every strip of every
// frame.
type Builder struct {
	gtx     layout.Context
	sizing  sizing.Sizing
	spacing unit.Dp
	click   *gesture.Click
	used    bool
}

// Strip hands out cells of a strip in order. Every cell has the length
// resolved from the size at the same position of its Builder. Cells not
// used when the strip function returns are left empty.
type Strip struct {
	cells   placer
	lengths []float32
	spacing unit.Dp
	closed  bool
}

// Response describes the area covered by a strip.
type Response struct {
	// Rect is the union of the strip's cells.
	Rect image.Rectangle
	// Hovered and Clicked report pointer interaction with the strip
	// area. They are only set for strips built with a Click.
	Hovered bool
	Clicked bool
}

// New returns a builder for a strip that fills the maximum constraints
// of gtx.
//
// Unlike Flex children, strip cells don't grow with their content.
func New(gtx layout.Context) *Builder {
	return &Builder{gtx: gtx}
}

// Size adds a cell.
func (b *Builder) Size(s sizing.Size) *Builder {
	b.sizing.Add(s)
	return b
}

// Sizes adds count cells of the same size.
func (b *Builder) Sizes(s sizing.Size, count int) *Builder {
	b.sizing.AddN(s, count)
	return b
}

// Spacing sets the gap between adjacent cells. Nested strips inherit
// the spacing of their parent.
func (b *Builder) Spacing(v unit.Dp) *Builder {
	b.spacing = v
	return b
}

// Click makes the strip area a click and hover target for c. Cell
// contents are placed above the area, and receive pointer events
// first.
func (b *Builder) Click(c *gesture.Click) *Builder {
	b.click = c
	return b
}

// Horizontal lays out the strip from left to right. The strip takes the
// full available width, and every cell takes the full available height.
func (b *Builder) Horizontal(strip func(s *Strip)) Response {
	return b.layout(layout.Horizontal, strip)
}

// Vertical lays out the strip from top to bottom. The strip takes the
// full available height, and every cell takes the full available width.
func (b *Builder) Vertical(strip func(s *Strip)) Response {
	return b.layout(layout.Vertical, strip)
}

func (b *Builder) layout(axis layout.Axis, strip func(s *Strip)) Response {
	if b.used {
		panic("strip: builder used twice")
	}
	b.used = true
	gtx := b.gtx
	var resp Response
	if b.click != nil {
		for {
			e, ok := b.click.Update(gtx.Source)
			if !ok {
				break
			}
			if e.Kind == gesture.KindClick {
				resp.Clicked = true
			}
		}
		resp.Hovered = b.click.Hovered()
	}
	// Spacing goes between cells, so one gap less than the cell count is
	// available to the lengths.
	spacing := float32(gtx.Dp(b.spacing))
	total := float32(axisMain(axis, gtx.Constraints.Max)) - spacing
	lengths := b.sizing.Lengths(gtx.Metric, total, spacing)

	macro := op.Record(gtx.Ops)
	cells := newCellLayout(gtx, axis, spacing)
	s := &Strip{cells: cells, lengths: lengths, spacing: b.spacing}
	s.run(strip)
	call := macro.Stop()

	resp.Rect = cells.bounds()
	if b.click != nil {
		area := clip.Rect(resp.Rect).Push(gtx.Ops)
		b.click.Add(gtx.Ops)
		area.Pop()
	}
	call.Add(gtx.Ops)
	return resp
}

// Dimensions returns the dimensions of the strip, for use as the
// result of a layout.Widget.
func (r Response) Dimensions() layout.Dimensions {
	return layout.Dimensions{Size: r.Rect.Max}
}

// run calls fn and fills the cells it didn't use, however fn returns.
func (s *Strip) run(fn func(s *Strip)) {
	defer s.close()
	fn(s)
}

func (s *Strip) close() {
	for len(s.lengths) > 0 {
		s.Empty()
	}
	s.closed = true
}

// Remaining returns the number of cells not yet used.
func (s *Strip) Remaining() int {
	return len(s.lengths)
}

func (s *Strip) next() float32 {
	if s.closed {
		panic("strip: used after layout")
	}
	if len(s.lengths) == 0 {
		panic("strip: tried using more cells than available")
	}
	l := s.lengths[0]
	s.lengths = s.lengths[1:]
	return l
}

// Empty leaves the next cell empty.
func (s *Strip) Empty() {
	s.cells.place(s.next(), false, nil)
}

// Cell lays out w in the next cell. The cell size is the maximum
// constraint of w; content exceeding it is not clipped.
func (s *Strip) Cell(w layout.Widget) {
	s.cells.place(s.next(), false, w)
}

// CellClipped is like Cell but clips the content to the cell bounds.
func (s *Strip) CellClipped(w layout.Widget) {
	s.cells.place(s.next(), true, w)
}

// Strip lays out a nested strip in the next cell.
func (s *Strip) Strip(fn func(b *Builder)) {
	s.Cell(s.nested(fn))
}

// StripClipped is like Strip but clips the nested strip to the cell
// bounds.
func (s *Strip) StripClipped(fn func(b *Builder)) {
	s.CellClipped(s.nested(fn))
}

func (s *Strip) nested(fn func(b *Builder)) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		b := New(gtx).Spacing(s.spacing)
		fn(b)
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
}
