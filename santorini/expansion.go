package santorini

// Expansion enumerates one full turn at a time: for every legal move of
// every active pawn, and for every legal build following that move, it
// produces one child node. A move that wins skips the build scan entirely
// (there is nothing left to build). This is the santorini.rs
// SantoriniExpansion, specialized to Go generics via mcts.ExpansionPolicy.
type Expansion struct{}

func (Expansion) Expand(n Node) []Node {
	if n.IsVictory {
		return nil
	}

	g := n.MoveState
	var out []Node
	for _, pawn := range g.ActivePawns() {
		for _, mv := range pawn.Actions() {
			moveOutcome := g.Apply(mv)
			if moveOutcome.Won() {
				out = append(out, Node{
					HasMove:      true,
					Move:         mv,
					IsVictory:    true,
					VictoryState: moveOutcome.Victory(),
				})
				continue
			}

			bg := moveOutcome.Build()
			for _, ba := range bg.ActivePawn().Actions() {
				buildOutcome := bg.Apply(ba)
				if buildOutcome.Won() {
					out = append(out, Node{
						HasMove:      true,
						Move:         mv,
						HasBuild:     true,
						Build:        ba,
						IsVictory:    true,
						VictoryState: buildOutcome.Victory(),
					})
					continue
				}
				out = append(out, Node{
					HasMove:   true,
					Move:      mv,
					HasBuild:  true,
					Build:     ba,
					IsVictory: false,
					MoveState: buildOutcome.Move(),
				})
			}
		}
	}
	return out
}
