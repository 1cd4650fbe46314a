// SPDX-License-Identifier: MIT

package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOptionViolation is returned by New for an invalid Option.
	ErrOptionViolation = errors.New("extract: invalid option supplied")

	// ErrAlreadyExtracted is the panic cause of a second ExtractPaths call.
	ErrAlreadyExtracted = errors.New("extract: paths already extracted")

	// ErrNilAction is the panic cause of AddAction without an action.
	ErrNilAction = errors.New("extract: action is nil")

	// ErrUnreachable is returned when an action edge leaves a state that the
	// root cannot reach; no path from the root could cover it.
	ErrUnreachable = errors.New("extract: state unreachable from the root")

	// ErrUnbalanced is the panic cause when decomposition finds flow left
	// over, which means the circulation was not balanced.
	ErrUnbalanced = errors.New("extract: circulation is not balanced")

	// ErrConfig reports an invalid configuration document.
	ErrConfig = errors.New("extract: invalid config")
)

// Step is one action edge of a path. ID is the value AddAction returned;
// From and To are the indices AddState returned.
type Step struct {
	ID   int `json:"id" yaml:"id"`
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String renders s as "id:from->to".
func (s Step) String() string {
	return fmt.Sprintf("%d:%d->%d", s.ID, s.From, s.To)
}

// Path is an ordered walk starting at the root state.
type Path []Step

// String renders p as the visited state indices, "0 -> 1 -> 3".
func (p Path) String() string {
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(p[0].From))
	for _, s := range p {
		b.WriteString(" -> ")
		b.WriteString(strconv.Itoa(s.To))
	}

	return b.String()
}

// stage tracks the extractor's lifecycle.
type stage int

const (
	stageBuilding stage = iota
	stageClosed
	stageNetworkConstructed
	stageFlowSolved
	stageOptimized
	stageCirculationReady
	stageDecomposing
	stageDone
)

var stageNames = [...]string{
	"building", "closed", "network-constructed", "flow-solved",
	"optimized", "circulation-ready", "decomposing", "done",
}

func (s stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}
