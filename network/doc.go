// SPDX-License-Identifier: MIT

// Package network holds the flow network a path cover is computed on: the
// directed multigraph of discovered states and transitions plus the flow and
// capacity bookkeeping the solvers mutate in place.
//
// Node ids are dense integers. Id 0 is the source, id 1 is the root (the first
// registered state) and the last id is the sink once the extractor appends it.
// Every other id is a discovered state, deduplicated by its 64-bit fingerprint.
//
// Edges are stored once per physical record in flat per-field slices
// (endpoints, flow, capacity, action) and exposed through two logical ids:
//
//	2k   forward  from[k] → to[k], flow = flow[k]
//	2k+1 backward to[k] → from[k], flow = capacity[k] − flow[k]
//
// so the residual capacity of a logical edge is Capacity − Flow in either
// orientation and id^1 is always its twin. No per-edge objects are allocated.
//
// Concurrency:
//
//   - AddNode, AddEdge, AddStateEdge are safe for concurrent callers (one
//     mutex guards the slices and the fingerprint index).
//   - AddStateEdge blocks on a condition variable until both endpoint
//     fingerprints are registered by AddNode.
//   - NodeCount, EdgeCount and Sink take the same mutex and may be read
//     while the network is being built.
//   - Readers (Edge, AdjacentEdgeIDs) and IncFlow are lock-free and may only be
//     used after Shutdown, from a single goroutine.
//
// Mutating the structure of a shut-down network is a programming error and
// panics with an error wrapping ErrShutDown.
package network
