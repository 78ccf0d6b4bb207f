// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"github.com/gioextras/extras/sizing"
	"github.com/gioextras/extras/strip"
)

type config struct {
	Spacing unit.Dp
	Clip    bool
}

type ui struct {
	th   *material.Theme
	cfg  config
	icon *widget.Icon

	body    gesture.Click
	clicks  int
	hovered bool
}

var panels = []struct {
	name  string
	color color.RGBA
	size  sizing.Size
}{
	{"left", colornames.Lightsteelblue, sizing.Weighted(1)},
	{"center", colornames.Wheat, sizing.Weighted(2).AtLeast(120)},
	{"right", colornames.Lightsteelblue, sizing.Weighted(1).AtMost(200)},
}

func newUI(th *material.Theme, cfg config) (*ui, error) {
	ic, err := widget.NewIcon(icons.ActionViewQuilt)
	if err != nil {
		return nil, err
	}
	return &ui{th: th, cfg: cfg, icon: ic}, nil
}

func (u *ui) Layout(gtx layout.Context) layout.Dimensions {
	return strip.New(gtx).
		Spacing(u.cfg.Spacing).
		Size(sizing.Exact(56)).
		Size(sizing.RemainderAtLeast(100)).
		Size(sizing.Exact(32)).
		Vertical(func(s *strip.Strip) {
			s.Strip(u.header)
			s.Strip(u.panes)
			u.cell(s, func(gtx layout.Context) layout.Dimensions {
				msg := fmt.Sprintf("%d clicks", u.clicks)
				if u.hovered {
					msg += ", hovered"
				}
				return layout.UniformInset(4).Layout(gtx, material.Caption(u.th, msg).Layout)
			})
		}).Dimensions()
}

func (u *ui) header(b *strip.Builder) {
	b.Size(sizing.Exact(56)).
		Size(sizing.Remainder()).
		Size(sizing.Relative(0.2).AtLeast(80)).
		Horizontal(func(s *strip.Strip) {
			u.cell(s, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return u.icon.Layout(gtx, u.th.Palette.ContrastBg)
				})
			})
			u.cell(s, func(gtx layout.Context) layout.Dimensions {
				return layout.W.Layout(gtx, material.H6(u.th, "Strips").Layout)
			})
			// The last header cell is left empty.
		})
}

func (u *ui) panes(b *strip.Builder) {
	for _, p := range panels {
		b.Size(p.size)
	}
	resp := b.Click(&u.body).Horizontal(func(s *strip.Strip) {
		for _, p := range panels {
			u.cell(s, func(gtx layout.Context) layout.Dimensions {
				fill(gtx, p.color)
				label := fmt.Sprintf("%s %v", p.name, p.size)
				return layout.UniformInset(8).Layout(gtx, material.Body1(u.th, label).Layout)
			})
		}
	})
	if resp.Clicked {
		u.clicks++
	}
	u.hovered = resp.Hovered
}

func (u *ui) cell(s *strip.Strip, w layout.Widget) {
	if u.cfg.Clip {
		s.CellClipped(w)
	} else {
		s.Cell(w)
	}
}

func fill(gtx layout.Context, c color.RGBA) {
	col := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	paint.FillShape(gtx.Ops, col, clip.Rect{Max: gtx.Constraints.Max}.Op())
}
