// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic state graphs for tests,
// benchmarks and examples of the path cover pipeline.
//
// A generated Graph is a state count plus an ordered list of transitions
// between state indices. State 0 is always the initial state and every
// constructor guarantees that all states are reachable from it, which is the
// precondition the extractor expects from a model checker's reachable set.
//
// Constructors:
//
//   - Chain(n):        0 → 1 → … → n−1.
//   - Ring(n):         Chain(n) closed by n−1 → 0.
//   - RandomDAG(n):    random spanning arborescence rooted at 0 plus forward
//     edges i → j (i < j) sampled with WithDensity.
//   - RandomCyclic(n): RandomDAG(n) plus WithBackEdges edges j → i (i ≤ j).
//
// Options follow the functional-options pattern. Option constructors panic on
// meaningless input; constructors return sentinel errors wrapped with their
// method name. Identical inputs and seed always produce identical graphs.
package builder
