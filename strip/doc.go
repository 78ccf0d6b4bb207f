// SPDX-License-Identifier: Unlicense OR MIT

/*
Package strip lays out a row or column of fixed size cells.

A strip is declared with the sizes of its cells, then built in one
direction. The strip function receives a Strip that hands out the cells
in order:

	strip.New(gtx).
		Size(sizing.RemainderAtLeast(100)).
		Size(sizing.Exact(40)).
		Vertical(func(s *strip.Strip) {
			s.Strip(func(b *strip.Builder) {
				b.Sizes(sizing.Remainder(), 2).Horizontal(func(s *strip.Strip) {
					s.Cell(topLeft)
					s.Cell(topRight)
				})
			})
			s.Cell(footer)
		})

Cells take their main axis length from the resolved size and fill the
cross axis. Content does not change the size of a cell.

Using more cells than sizes were declared is a programming error and
panics. Cells left unused when the strip function returns are laid out
empty.
*/
package strip
