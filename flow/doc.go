// SPDX-License-Identifier: MIT

// Package flow saturates a *network.Network from its source to its sink.
//
// Three solvers implement MaxFlowSolver:
//
//   - Naive: one DFS from the root over action edges; every dead end sends
//     one unit back to the root through its closing edge. O(V + E). Valid
//     only when the action-edge subgraph is acyclic and every state is
//     reachable from the root.
//   - Dinic: BFS level graph over residual capacity, then blocking flow by
//     DFS with a per-node resume pointer. O(V²·E) in general, far less on
//     the unit-ish networks built by the extractor.
//   - PushRelabel: FIFO push/relabel/discharge with source height equal to
//     the node count. O(V³).
//
// All solvers mutate the network in place through IncFlow, run to
// completion, and require the network to be shut down (no concurrent
// writers). Validate checks the post-conditions every solver guarantees:
// capacity bounds and conservation at every node other than source and sink.
package flow
