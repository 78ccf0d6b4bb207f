// SPDX-License-Identifier: Unlicense OR MIT

package sizing

import (
	"fmt"
	"strings"

	"gioui.org/unit"
)

// Size describes how the length of one cell is computed.
type Size struct {
	kind kind
	// value is the length for Exact, the fraction of the total for
	// Relative and the weight for shares of the leftover space.
	value float32

	min    unit.Dp
	max    unit.Dp
	hasMax bool
}

// Sizing is an ordered list of sizes. The zero value is an empty list
// ready to use.
type Sizing struct {
	sizes []Size
}

type kind uint8

const (
	exact kind = iota
	relative
	share
)

// Exact returns a size of exactly v. Bounds do not apply to exact
// sizes.
func Exact(v unit.Dp) Size {
	return Size{kind: exact, value: float32(v)}
}

// Relative returns a size that is a fraction of the total length,
// including spacing.
func Relative(fraction float32) Size {
	return Size{kind: relative, value: fraction}
}

// Remainder returns a size that shares the leftover space equally with
// other remainders.
func Remainder() Size {
	return Weighted(1)
}

// RemainderAtLeast is like Remainder but never resolves below min.
func RemainderAtLeast(min unit.Dp) Size {
	return Remainder().AtLeast(min)
}

// Weighted returns a size that takes a weight-proportional share of the
// leftover space. Remainder is equivalent to Weighted(1).
func Weighted(weight float32) Size {
	return Size{kind: share, value: weight}
}

// AtLeast returns a copy of s with a lower bound.
func (s Size) AtLeast(min unit.Dp) Size {
	s.min = min
	return s
}

// AtMost returns a copy of s with an upper bound.
func (s Size) AtMost(max unit.Dp) Size {
	s.max = max
	s.hasMax = true
	return s
}

// clamp v, in pixels, to the bounds of s. The result is never negative.
func (s Size) clamp(v, scale float32) float32 {
	if s.hasMax {
		if max := float32(s.max) * scale; v > max {
			v = max
		}
	}
	if min := float32(s.min) * scale; v < min {
		v = min
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (s Size) String() string {
	var b strings.Builder
	switch s.kind {
	case exact:
		fmt.Fprintf(&b, "Exact(%gdp)", s.value)
		return b.String()
	case relative:
		fmt.Fprintf(&b, "Relative(%g)", s.value)
	case share:
		if s.value == 1 {
			b.WriteString("Remainder")
		} else {
			fmt.Fprintf(&b, "Weighted(%g)", s.value)
		}
	default:
		panic("unreachable")
	}
	if s.min != 0 || s.hasMax {
		fmt.Fprintf(&b, "[%gdp,", float32(s.min))
		if s.hasMax {
			fmt.Fprintf(&b, "%gdp", float32(s.max))
		}
		b.WriteString("]")
	}
	return b.String()
}

// Add a size to the end of the list.
func (z *Sizing) Add(s Size) {
	z.sizes = append(z.sizes, s)
}

// AddN adds count copies of s. A count of zero or less adds nothing.
func (z *Sizing) AddN(s Size, count int) {
	for i := 0; i < count; i++ {
		z.sizes = append(z.sizes, s)
	}
}

// Len returns the number of sizes in the list.
func (z *Sizing) Len() int {
	return len(z.sizes)
}

// Lengths resolves the sizes to lengths in pixels, in list order. Total
// is the length available to the cells and the spacing between them;
// spacing is the gap between two adjacent cells. Dp values are converted
// with m.
//
// Exact and relative sizes are resolved first. The space they and the
// gaps leave over is split between the remaining sizes by weight, and
// each share is then clamped to its bounds.
func (z *Sizing) Lengths(m unit.Metric, total, spacing float32) []float32 {
	n := len(z.sizes)
	if n == 0 {
		return nil
	}
	scale := m.PxPerDp
	if scale == 0 {
		scale = 1
	}
	lengths := make([]float32, n)
	var fixed, weights float32
	for i, s := range z.sizes {
		switch s.kind {
		case exact:
			lengths[i] = s.value * scale
			fixed += lengths[i]
		case relative:
			lengths[i] = s.clamp(total*s.value, scale)
			fixed += lengths[i]
		case share:
			if s.value > 0 {
				weights += s.value
			}
		}
	}
	left := total - fixed - float32(n-1)*spacing
	if left < 0 {
		left = 0
	}
	for i, s := range z.sizes {
		if s.kind != share {
			continue
		}
		var l float32
		if weights > 0 && s.value > 0 {
			l = left * s.value / weights
		}
		lengths[i] = s.clamp(l, scale)
	}
	return lengths
}
