package mcts

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// WriteDOT renders the current search tree as Graphviz DOT, down to
// maxDepth levels below root (maxDepth < 0 means unlimited). label formats
// a state for display. This is purely a debugging aid for inspecting why
// the search picked the line it did; nothing in the search itself depends
// on it.
func (t *Tree[T]) WriteDOT(label func(T) string, maxDepth int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("mcts"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	counter := 0
	var walkErr error
	var walk func(n *Node[T], parentID string, depth int)
	walk = func(n *Node[T], parentID string, depth int) {
		if walkErr != nil {
			return
		}
		id := fmt.Sprintf("n%d", counter)
		counter++

		attrs := map[string]string{
			"label": fmt.Sprintf("%q", fmt.Sprintf("%s\nv=%d s=%.3f", label(n.state), n.visits, n.score)),
		}
		if err := g.AddNode("mcts", id, attrs); err != nil {
			walkErr = err
			return
		}
		if parentID != "" {
			if err := g.AddEdge(parentID, id, true, nil); err != nil {
				walkErr = err
				return
			}
		}

		if maxDepth >= 0 && depth >= maxDepth {
			return
		}
		for _, c := range n.children {
			walk(c, id, depth+1)
		}
	}
	walk(t.root, "", 0)
	if walkErr != nil {
		return "", walkErr
	}
	return g.String(), nil
}
