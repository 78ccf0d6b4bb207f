// SPDX-License-Identifier: Unlicense OR MIT

package sizing

import (
	"testing"

	"gioui.org/unit"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestLengths(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []Size
		metric  unit.Metric
		total   float32
		spacing float32
		want    []float32
	}{
		{
			name:  "empty",
			total: 100,
			want:  nil,
		},
		{
			name:  "exact around remainder",
			sizes: []Size{Exact(40), Remainder(), Exact(40)},
			total: 200,
			want:  []float32{40, 120, 40},
		},
		{
			name:    "spacing between cells",
			sizes:   []Size{Exact(10), Remainder(), Exact(30)},
			total:   100,
			spacing: 5,
			want:    []float32{10, 50, 30},
		},
		{
			name:  "exact ignores total",
			sizes: []Size{Exact(10), Remainder(), Exact(30)},
			total: 0,
			want:  []float32{10, 0, 30},
		},
		{
			name:    "equal split",
			sizes:   []Size{Remainder(), Remainder(), Remainder()},
			total:   100,
			spacing: 5,
			want:    []float32{30, 30, 30},
		},
		{
			name:  "single remainder takes all",
			sizes: []Size{Remainder()},
			total: 77,
			want:  []float32{77},
		},
		{
			name:    "oversubscribed",
			sizes:   []Size{Exact(80), Remainder(), Weighted(2)},
			total:   50,
			spacing: 2,
			want:    []float32{80, 0, 0},
		},
		{
			name:  "minimum overflows",
			sizes: []Size{RemainderAtLeast(100), Exact(40)},
			total: 120,
			want:  []float32{100, 40},
		},
		{
			name:  "weighted",
			sizes: []Size{Weighted(1), Weighted(3)},
			total: 100,
			want:  []float32{25, 75},
		},
		{
			name:  "relative",
			sizes: []Size{Relative(0.25), Remainder()},
			total: 200,
			want:  []float32{50, 150},
		},
		{
			name:  "relative clamped",
			sizes: []Size{Relative(0.5).AtMost(40), Remainder()},
			total: 200,
			want:  []float32{40, 160},
		},
		{
			// Clamped space is not redistributed.
			name:  "maximum not redistributed",
			sizes: []Size{Remainder().AtMost(10), Remainder()},
			total: 100,
			want:  []float32{10, 50},
		},
		{
			name:  "minimum not taken from others",
			sizes: []Size{RemainderAtLeast(80), Remainder()},
			total: 100,
			want:  []float32{80, 50},
		},
		{
			name:   "scaled",
			sizes:  []Size{Exact(10), RemainderAtLeast(30)},
			metric: unit.Metric{PxPerDp: 2},
			total:  50,
			want:   []float32{20, 60},
		},
		{
			name:  "zero weights",
			sizes: []Size{Weighted(0).AtLeast(5), Weighted(0)},
			total: 100,
			want:  []float32{5, 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var z Sizing
			for _, s := range tc.sizes {
				z.Add(s)
			}
			got := z.Lengths(tc.metric, tc.total, tc.spacing)
			if len(got) != len(tc.sizes) {
				t.Fatalf("got %d lengths for %d sizes", len(got), len(tc.sizes))
			}
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("lengths mismatch (-want +got):\n%s", diff)
			}
			for i, l := range got {
				if l < 0 {
					t.Errorf("length %d is negative: %v", i, l)
				}
			}
		})
	}
}

func TestLengthsIdempotent(t *testing.T) {
	var z Sizing
	z.Add(Relative(0.3))
	z.AddN(Weighted(2).AtMost(70), 2)
	z.Add(Exact(12))
	m := unit.Metric{PxPerDp: 1.5}
	first := z.Lengths(m, 333, 4)
	second := z.Lengths(m, 333, 4)
	if !cmp.Equal(first, second) {
		t.Errorf("lengths differ between calls: %v != %v", first, second)
	}
}

func TestAddN(t *testing.T) {
	var z Sizing
	z.AddN(Remainder(), 0)
	if n := z.Len(); n != 0 {
		t.Fatalf("AddN(_, 0) added %d sizes", n)
	}
	z.AddN(Exact(5), 3)
	z.Add(Remainder())
	if n := z.Len(); n != 4 {
		t.Fatalf("got %d sizes, want 4", n)
	}
	got := z.Lengths(unit.Metric{}, 20, 0)
	if diff := cmp.Diff([]float32{5, 5, 5, 5}, got, approx); diff != "" {
		t.Errorf("lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestSizeString(t *testing.T) {
	tests := []struct {
		size Size
		want string
	}{
		{Exact(40), "Exact(40dp)"},
		{Exact(40).AtLeast(50), "Exact(40dp)"},
		{Relative(0.5), "Relative(0.5)"},
		{Remainder(), "Remainder"},
		{RemainderAtLeast(100), "Remainder[100dp,]"},
		{Weighted(2).AtMost(50), "Weighted(2)[0dp,50dp]"},
	}
	for _, tc := range tests {
		if got := tc.size.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
