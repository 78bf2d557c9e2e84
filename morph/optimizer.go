package morph

import "sort"

// optimizeShifts is the Minkowski Shift Optimizer (C2). For each multi-point
// summand it compacts positions modulo l — sorting in cyclic order and
// subtracting a common origin so the smallest shift becomes 0 — and
// accumulates the subtracted value into a running correction. Singleton
// summands contribute their one shift straight into the correction. The
// result is the compacted multi-point summands, followed by a one-element
// list [correction] if the total correction is nonzero.
//
// Compacted shifts are small, which keeps the in-place kernel's tail buffer
// (C3) small; the lone corrective shift becomes a single final cyclic
// rotation, applied last by the Minkowski Planner (C4).
func optimizeShifts(shiftLists [][]int, l int) [][]int {
	if l <= 0 {
		return nil
	}

	correction := 0
	compacted := make([][]int, 0, len(shiftLists))

	for _, shifts := range shiftLists {
		if len(shifts) == 0 {
			continue
		}
		if len(shifts) == 1 {
			correction = mod(correction+shifts[0], l)
			continue
		}

		sorted := append([]int(nil), shifts...)
		sort.Ints(sorted)
		origin := sorted[0]

		out := make([]int, len(sorted))
		for i, s := range sorted {
			out[i] = mod(s-origin, l)
		}
		correction = mod(correction+origin, l)
		compacted = append(compacted, out)
	}

	if correction != 0 {
		compacted = append(compacted, []int{correction})
	}
	return compacted
}

func mod(a, l int) int {
	a %= l
	if a < 0 {
		a += l
	}
	return a
}
