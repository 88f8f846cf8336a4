package mcts

import "gonum.org/v1/gonum/stat"

// Stats summarizes the spread of the root's children, for logging why a
// search did or didn't converge on a clear best move.
type Stats struct {
	ChildCount    int
	MeanScore     float64
	StdDevScore   float64
	MeanVisits    float64
	StdDevVisits  float64
}

// Stats computes diagnostics over the current root's children. Returns the
// zero value if the root has no children (unexpanded or terminal).
func (t *Tree[T]) Stats() Stats {
	children := t.root.children
	if len(children) == 0 {
		return Stats{}
	}

	scores := make([]float64, len(children))
	visits := make([]float64, len(children))
	for i, c := range children {
		scores[i] = c.score
		visits[i] = float64(c.visits)
	}

	meanScore, stdScore := stat.MeanStdDev(scores, nil)
	meanVisits, stdVisits := stat.MeanStdDev(visits, nil)
	return Stats{
		ChildCount:   len(children),
		MeanScore:    meanScore,
		StdDevScore:  stdScore,
		MeanVisits:   meanVisits,
		StdDevVisits: stdVisits,
	}
}
