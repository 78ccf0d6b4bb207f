// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that lays out nested strips.

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	spacing = flag.Float64("spacing", 4, "gap between strip cells, in dp")
	clipped = flag.Bool("clip", false, "clip cell contents to the cell bounds")
)

func main() {
	flag.Parse()
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Strip"), app.Size(unit.Dp(800), unit.Dp(600)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u, err := newUI(th, config{Spacing: unit.Dp(*spacing), Clip: *clipped})
	if err != nil {
		return fmt.Errorf("strip demo: %w", err)
	}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				return fmt.Errorf("strip demo: %w", e.Err)
			}
			return nil
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
