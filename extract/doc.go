// SPDX-License-Identifier: MIT

// Package extract turns an explored state graph into a small set of paths
// from the initial state that together traverse every action edge.
//
// States and actions are fed concurrently while the graph is explored.
// ExtractPaths then runs the pipeline once:
//
//  1. close the network and add the synthetic edges: balancing edges out of
//     the source or into the sink, and one closing edge from every state back
//     to the root;
//  2. check whether the action graph is acyclic;
//  3. saturate it with a max-flow solver (Naive when acyclic, Dinic or
//     PushRelabel otherwise);
//  4. mark commuting-diamond edges redundant;
//  5. shorten the cover with a path optimizer (Heuristic when acyclic, BFS
//     otherwise);
//  6. add back the mandatory traversal of every action edge, which turns the
//     flow into a circulation through the root;
//  7. decompose the circulation into paths, by repeated DFS from the root
//     when acyclic or by splitting one Euler circuit at the root otherwise.
//
// Paths come out of an iter.Seq that is lazy and single-use.
//
// Example:
//
//	x, _ := extract.New(extract.WithLogger(logger))
//	x.AddState(s0)
//	x.AddState(s1)
//	x.AddAction(s0, s1, act)
//	paths, err := x.ExtractPaths(ctx)
//	for p := range paths {
//		// p[i].ID is the id AddAction returned
//	}
package extract
