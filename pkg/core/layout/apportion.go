package layout

import (
	"math"
	"sort"
)

// Apportion splits an integer extent (terminal cells, device pixels) between
// panels in proportion to sizes, using the largest-remainder method so that
// the parts always add up to cells exactly. Zero-size panels get zero cells.
func Apportion(sizes []float64, cells int) []int {
	out := make([]int, len(sizes))
	if cells <= 0 || len(sizes) == 0 {
		return out
	}

	var total float64
	for _, s := range sizes {
		if s > 0 {
			total += s
		}
	}
	if total <= 0 {
		return out
	}

	type rem struct {
		index int
		frac  float64
	}
	rems := make([]rem, 0, len(sizes))
	used := 0
	for i, s := range sizes {
		if s <= 0 {
			continue
		}
		exact := s / total * float64(cells)
		whole := math.Floor(exact)
		out[i] = int(whole)
		used += out[i]
		rems = append(rems, rem{index: i, frac: exact - whole})
	}

	// Stable on ties so that the leftmost panel gets the spare cell.
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < cells && len(rems) > 0; i++ {
		out[rems[i%len(rems)].index]++
		used++
	}
	return out
}
