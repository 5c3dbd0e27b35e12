package peakfit

import "sort"

// DetectOptions controls the local-maximum search that seeds the fit.
type DetectOptions struct {
	// MinX and MaxX bound the search window.
	MinX float64
	MaxX float64

	// MinSeparation is the smallest allowed x distance between two
	// reported peaks.
	MinSeparation float64

	// MaxCount caps the number of peaks; the most prominent survive.
	// Zero means no cap.
	MaxCount int
}

// FindPeaks returns the x positions of local maxima of (xs, ys) inside
// the search window, most prominent first trimmed to MaxCount, sorted by
// ascending position. xs must be sorted ascending.
func FindPeaks(xs, ys []float64, opts DetectOptions) []float64 {
	if len(xs) != len(ys) || len(xs) < 3 {
		return nil
	}

	type candidate struct {
		x, y float64
	}

	var cands []candidate

	for i := 1; i < len(xs)-1; i++ {
		if opts.MaxX > opts.MinX && (xs[i] <= opts.MinX || xs[i] >= opts.MaxX) {
			continue
		}

		if ys[i] > ys[i-1] && ys[i] >= ys[i+1] {
			cands = append(cands, candidate{x: xs[i], y: ys[i]})
		}
	}

	// Tallest first, then greedy separation filtering.
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].y > cands[b].y })

	var kept []candidate
	for _, c := range cands {
		ok := true
		for _, k := range kept {
			d := c.x - k.x
			if d < 0 {
				d = -d
			}

			if d < opts.MinSeparation {
				ok = false
				break
			}
		}

		if ok {
			kept = append(kept, c)
		}
	}

	if opts.MaxCount > 0 && len(kept) > opts.MaxCount {
		kept = kept[:opts.MaxCount]
	}

	out := make([]float64, len(kept))
	for i, c := range kept {
		out[i] = c.x
	}

	sort.Float64s(out)

	return out
}
