package layout

import (
	log "github.com/sirupsen/logrus"

	"github.com/HMetcalfeW/terracarta/pkg/graph"
)

// AssignLevels computes the hierarchical rank of every node: 0 for nodes
// with no dependencies, otherwise one plus the maximum level of the nodes
// it depends on. Results are written to Node.Level.
//
// The traversal is a memoized depth-first walk driven by an explicit frame
// stack, so large graphs cannot blow the call stack. Cycle safety: when a
// node that is still being computed is revisited through a back-edge, that
// node's level is pinned to 0 and the revisit contributes 0 instead of
// recursing. Cyclic components therefore get a usable, if imperfect,
// ranking, and the walk always terminates.
func AssignLevels(g *graph.Graph) {
	logger := log.WithField("func", "layout.AssignLevels")

	const (
		white = iota // untouched
		grey         // on the active stack
		black        // finished
	)

	deps := make(map[string][]string, len(g.Nodes))
	for _, n := range g.Nodes {
		deps[n.ID] = g.Dependencies(n.ID)
	}

	state := make(map[string]int, len(g.Nodes))
	levels := make(map[string]int, len(g.Nodes))

	type frame struct {
		id   string
		next int
		max  int // highest dependency level seen so far
	}

	walk := func(root string) {
		stack := []frame{{id: root, max: -1}}
		state[root] = grey

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(deps[f.id]) {
				d := deps[f.id][f.next]
				f.next++
				switch state[d] {
				case white:
					state[d] = grey
					stack = append(stack, frame{id: d, max: -1})
				case grey:
					// Back-edge: pin the revisited node to level 0.
					if _, done := levels[d]; !done {
						levels[d] = 0
						logger.WithFields(log.Fields{
							"node": d,
							"from": f.id,
						}).Debug("Cycle detected, pinning level to 0")
					}
					if f.max < 0 {
						f.max = 0
					}
				case black:
					if levels[d] > f.max {
						f.max = levels[d]
					}
				}
				continue
			}

			result := f.max + 1
			state[f.id] = black
			// A level pinned by cycle detection is never overwritten.
			if _, done := levels[f.id]; !done {
				levels[f.id] = result
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				if result > parent.max {
					parent.max = result
				}
			}
		}
	}

	for _, n := range g.Nodes {
		if state[n.ID] == white {
			walk(n.ID)
		}
	}

	for _, n := range g.Nodes {
		n.Level = levels[n.ID]
	}

	logger.WithField("nodes", len(g.Nodes)).Debug("Level assignment complete")
}
