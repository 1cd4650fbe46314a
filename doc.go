// Package statecover turns the state graph explored by a model checker into a
// small set of root-anchored paths that together traverse every transition,
// so that each path can be replayed as one test trace.
//
// The work is a minimum-flow problem with lower bounds. Every transition must
// be traversed at least once; every path starts at the initial state. The
// graph is reduced to a max-flow network, solved, trimmed by a path optimizer
// and then decomposed into paths: directly for acyclic graphs, through an
// Euler circuit of the balanced multigraph otherwise.
//
// Packages:
//
//	action/         ConcreteAction: declaration site, bound arguments, action hash
//	network/        StateNetwork: flat twin-edge flow network, fingerprint index
//	flow/           max-flow solvers: Naive (DAG), Dinic, Push-Relabel
//	optimize/       path optimizers: exact BFS cycle cancelling, bounded heuristic
//	reduce/         partial-order reduction of commuting diamonds
//	extract/        the Extractor pipeline, options, YAML config, path iteration
//	observability/  slog helpers, OpenTelemetry metrics and spans
//	builder/        seeded synthetic state graphs for tests and benchmarks
//
// Quick ASCII example:
//
//	    s0──a──▶s1
//	    │        │
//	    b        c
//	    ▼        ▼
//	    s2──d──▶s3
//
//	is covered by two paths, s0 a s1 c s3 and s0 b s2 d s3.
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/statecover
package statecover
