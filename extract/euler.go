// SPDX-License-Identifier: MIT

package extract

import (
	"fmt"
	"iter"
	"slices"
)

// eulerCircuit returns the circulation as one closed walk from the root,
// using Hierholzer's algorithm on an edge stack:
//
//  1. consume one edge out of the root and push it;
//  2. from the head of the top edge, consume and push the next edge with
//     flow left;
//  3. when the head has none, pop the top edge onto the circuit;
//  4. reverse the circuit.
//
// Every edge carrying flow must be consumed; anything left means the
// circulation was not balanced, and it panics with ErrUnbalanced.
func (x *Extractor) eulerCircuit() []int {
	n := x.net
	first, ok := x.advance(n.Root())
	if !ok {
		x.checkConsumed()
		return nil
	}

	stack := []int{first}
	circuit := make([]int, 0, x.totalTraversals()+x.actionEdgeCount())
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if id, ok := x.advance(n.To(top)); ok {
			stack = append(stack, id)
			continue
		}
		circuit = append(circuit, top)
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(circuit)
	x.checkConsumed()

	return circuit
}

// checkConsumed panics if any circulation edge still carries flow.
func (x *Extractor) checkConsumed() {
	n := x.net
	for id := 0; id < n.EdgeCount(); id += 2 {
		if n.From(id) == n.Source() || n.To(id) == n.Sink() {
			continue
		}
		if f := n.Flow(id); f != 0 {
			panic(fmt.Errorf("%w: edge %d (%d→%d) has %d units left",
				ErrUnbalanced, id/2, n.From(id)-1, n.To(id)-1, f))
		}
	}
}

// circuitPaths splits circuit at every return to the root. Closing edges
// are dropped from the paths.
func (x *Extractor) circuitPaths(circuit []int) iter.Seq[Path] {
	n := x.net
	root := n.Root()
	pos := 0
	return func(yield func(Path) bool) {
		for pos < len(circuit) {
			var path Path
			for pos < len(circuit) {
				id := circuit[pos]
				pos++
				if n.IsActionEdge(id) {
					path = append(path, x.step(id))
				}
				if n.To(id) == root {
					break
				}
			}
			if pos == len(circuit) {
				x.finish()
			}
			if !yield(path) {
				return
			}
		}
		x.finish()
	}
}
