// SPDX-License-Identifier: MIT

package extract

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/statecover/action"
	"github.com/katalvlaran/statecover/flow"
	"github.com/katalvlaran/statecover/network"
	"github.com/katalvlaran/statecover/observability"
	"github.com/katalvlaran/statecover/optimize"
	"github.com/katalvlaran/statecover/reduce"
)

// Extractor collects a state graph and extracts a path cover from it.
//
// AddState and AddAction are safe for concurrent use while the graph is
// explored. ExtractPaths may be called once; the statistics are available
// once it has returned.
type Extractor struct {
	opts   Options
	log    *slog.Logger
	runID  string
	net    *network.Network
	next   []int
	solver string

	// released is set once redundant edges gave up their mandatory unit.
	released bool

	mu          sync.Mutex
	stage       stage
	states      int
	actions     int
	paths       int
	redundant   int
	totalLength int
	acyclic     bool
}

// New returns an Extractor with its source node registered.
func New(opts ...Option) (*Extractor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	runID := observability.NewRunID()
	x := &Extractor{
		opts:  o,
		log:   observability.EnrichLogger(o.Logger, runID),
		runID: runID,
		net:   network.New(),
	}
	x.net.AddNode(nil) // source

	return x, nil
}

// RunID identifies this extractor in logs, metrics and spans.
func (x *Extractor) RunID() string { return x.runID }

// AddState registers s and returns its zero-based index. Re-adding a known
// fingerprint returns the existing index. The first state added is the root
// every path starts from.
func (x *Extractor) AddState(s network.State) int {
	return x.net.AddNode(s) - 1
}

// AddAction records the action edge from→to and returns its id. It blocks
// until both states have been added, possibly by another goroutine.
func (x *Extractor) AddAction(from, to network.State, act *action.ConcreteAction) int {
	if act == nil {
		panic(ErrNilAction)
	}
	return x.net.AddStateEdge(from, to, network.Inf, act) / 2
}

// AddActionContext is AddAction with a bounded wait for the endpoints.
func (x *Extractor) AddActionContext(ctx context.Context, from, to network.State, act *action.ConcreteAction) (int, error) {
	if act == nil {
		panic(ErrNilAction)
	}
	id, err := x.net.AddStateEdgeContext(ctx, from, to, network.Inf, act)
	if err != nil {
		return -1, fmt.Errorf("extract: add action: %w", err)
	}

	return id / 2, nil
}

// StateCount is the number of states, known once ExtractPaths ran.
func (x *Extractor) StateCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.states
}

// ActionCount is the number of action edges, known once ExtractPaths ran.
func (x *Extractor) ActionCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.actions
}

// PathCount is the number of paths ExtractPaths yields.
func (x *Extractor) PathCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.paths
}

// RedundantCount is the number of action edges marked by partial-order
// reduction.
func (x *Extractor) RedundantCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.redundant
}

// TotalLength is the number of action-edge traversals over all paths.
func (x *Extractor) TotalLength() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.totalLength
}

// AverageLength is TotalLength / PathCount rounded to the nearest integer.
func (x *Extractor) AverageLength() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.paths == 0 {
		return 0
	}
	return int(math.Round(float64(x.totalLength) / float64(x.paths)))
}

// Acyclic reports whether the action graph had no cycles through distinct
// states. Self-loops do not count.
func (x *Extractor) Acyclic() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.acyclic
}

// Cleanup releases the decomposition scratch space. The path sequence must
// not be used afterwards.
func (x *Extractor) Cleanup() {
	x.next = nil
}

// ExtractPaths closes the graph and computes the path cover. It panics with
// ErrAlreadyExtracted when called twice. The returned sequence is lazy and
// single-use: paths are computed while ranging, and a second range resumes
// where the previous one stopped.
func (x *Extractor) ExtractPaths(ctx context.Context) (iter.Seq[Path], error) {
	x.mu.Lock()
	if x.stage != stageBuilding {
		x.mu.Unlock()
		panic(fmt.Errorf("%w: extractor is %s", ErrAlreadyExtracted, x.stage))
	}
	x.stage = stageClosed
	x.states = x.net.NodeCount() - 1
	x.actions = x.net.EdgeCount() / 2
	x.mu.Unlock()

	start := time.Now()
	ctx, span := x.opts.Spans.StartRunSpan(ctx, x.runID, x.states, x.actions)
	observability.LogExtractionStart(x.log, x.states, x.actions)

	seq, err := x.run(ctx)
	x.opts.Metrics.RecordRun(ctx, err == nil, time.Since(start))
	if err != nil {
		x.opts.Spans.EndSpanWithError(span, err)
		return nil, err
	}
	x.opts.Metrics.RecordCover(ctx, observability.Cover{
		States:    x.states,
		Actions:   x.actions,
		Paths:     x.PathCount(),
		Redundant: x.RedundantCount(),
		Acyclic:   x.Acyclic(),
	})
	x.opts.Spans.EndSpanWithError(span, nil)
	observability.LogExportReady(x.log, x.PathCount(), float64(time.Since(start).Microseconds())/1000)

	return seq, nil
}

// run drives the pipeline stages.
func (x *Extractor) run(ctx context.Context) (iter.Seq[Path], error) {
	err := x.stageDo(ctx, "construct", stageNetworkConstructed, func(context.Context) error {
		x.constructNetwork()
		return x.checkReachable()
	})
	if err != nil {
		return nil, err
	}
	if x.states == 0 {
		x.mu.Lock()
		x.acyclic = true
		x.mu.Unlock()
		x.finish()
		return func(func(Path) bool) {}, nil
	}

	x.runStage(ctx, "acyclicity", stageNetworkConstructed, func(context.Context) {
		acyclic := x.isAcyclic()
		x.mu.Lock()
		x.acyclic = acyclic
		x.mu.Unlock()
	})

	acyclic := x.Acyclic()
	var paths int
	x.runStage(ctx, "solve", stageFlowSolved, func(context.Context) {
		done := observability.TimedOperation()
		x.newSolver(acyclic).FindMaxFlow()
		paths = x.pathCount()
		observability.LogInitialCover(x.log, paths, done())
	})

	if x.opts.PartialOrderReduction {
		x.runStage(ctx, "reduce", stageFlowSolved, func(context.Context) {
			marked := reduce.New(x.net).Reduce()
			if acyclic {
				x.release()
				x.released = true
			}
			x.mu.Lock()
			x.redundant = marked
			x.mu.Unlock()
			observability.LogReduced(x.log, marked)
		})
	}

	err = x.stageDo(ctx, "optimize", stageOptimized, func(ctx context.Context) error {
		done := observability.TimedOperation()
		before := x.pathCount()
		if opt := x.newOptimizer(acyclic); opt != nil {
			if err := opt.OptimizePaths(ctx); err != nil {
				return fmt.Errorf("extract: optimize paths: %w", err)
			}
		}
		paths = x.pathCount()
		observability.LogOptimized(x.log, before, paths, done())
		return nil
	})
	if err != nil {
		return nil, err
	}

	x.runStage(ctx, "circulate", stageCirculationReady, func(context.Context) {
		x.circulate()
		total := x.totalTraversals()
		x.mu.Lock()
		x.paths = paths
		x.totalLength = total
		x.mu.Unlock()
		observability.LogCoverLength(x.log, total, x.AverageLength())
	})

	var seq iter.Seq[Path]
	x.runStage(ctx, "decompose", stageDecomposing, func(context.Context) {
		x.next = make([]int, x.net.NodeCount())
		if acyclic {
			seq = x.acyclicPaths(paths)
		} else {
			seq = x.circuitPaths(x.eulerCircuit())
		}
	})

	return seq, nil
}

// stageDo runs fn inside a stage span, records its latency and advances the
// lifecycle to next on success.
func (x *Extractor) stageDo(ctx context.Context, name string, next stage, fn func(context.Context) error) error {
	start := time.Now()
	ctx, span := x.opts.Spans.StartStageSpan(ctx, name)
	err := fn(ctx)
	x.opts.Metrics.RecordStage(ctx, name, time.Since(start))
	x.opts.Spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogExtractionError(x.log, name, err)
		return err
	}
	x.mu.Lock()
	x.stage = next
	x.mu.Unlock()

	return nil
}

// runStage is stageDo for steps that cannot fail.
func (x *Extractor) runStage(ctx context.Context, name string, next stage, fn func(context.Context)) {
	start := time.Now()
	ctx, span := x.opts.Spans.StartStageSpan(ctx, name)
	fn(ctx)
	x.opts.Metrics.RecordStage(ctx, name, time.Since(start))
	x.opts.Spans.EndSpanWithError(span, nil)
	x.mu.Lock()
	x.stage = next
	x.mu.Unlock()
}

func (x *Extractor) newSolver(acyclic bool) flow.MaxFlowSolver {
	switch {
	case acyclic:
		x.solver = "naive"
		return flow.NewNaive(x.net)
	case x.opts.Solver == SolverPushRelabel:
		x.solver = SolverPushRelabel.String()
		observability.LogCycles(x.log, x.solver)
		return flow.NewPushRelabel(x.net)
	default:
		x.solver = SolverDinic.String()
		observability.LogCycles(x.log, x.solver)
		return flow.NewDinic(x.net)
	}
}

// newOptimizer returns nil when the heuristic has no pass to run.
func (x *Extractor) newOptimizer(acyclic bool) optimize.NetworkPathOptimizer {
	if !acyclic {
		return optimize.NewBFS(x.net)
	}
	depth := x.opts.optimizerDepth()
	if depth < 1 {
		return nil
	}
	h, err := optimize.NewHeuristic(x.net, depth)
	if err != nil {
		return nil
	}

	return h
}
