// SPDX-License-Identifier: MIT

// Package optimize lowers the number of paths encoded by a maximum flow of
// the path-cover reduction without touching its value.
//
// A max flow of the source/root/sink network describes a valid path cover,
// but not necessarily a small one: every unit on a closing edge (state →
// root) is one path. Both optimizers cancel cycles through the root in the
// residual network, which moves traversal units between action edges and
// drops closing units while keeping conservation everywhere:
//
//   - BFS repeats a residual BFS from the root until no cycle remains. Exact,
//     and the choice for cyclic action graphs.
//   - Heuristic walks 0/1-weighted shortest cycles with a per-node resume
//     pointer, in at most depth passes. It only ever gives up optimality
//     beyond its depth, and requires an acyclic action graph.
//
// Flows on the balancing edges (out of the source and into the sink) are
// left unchanged, so flow.Value is the same before and after.
package optimize
