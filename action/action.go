// SPDX-License-Identifier: MIT

package action

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
)

// ErrEncodeArg is returned when a bound argument has no canonical encoding.
var ErrEncodeArg = errors.New("action: cannot encode argument")

// Location identifies the declaration site of a transition rule.
type Location struct {
	// Module is the name of the module that declares the rule.
	Module string `json:"module"`

	// Line is the 1-based line of the declaration.
	Line int `json:"line"`

	// Column is the 1-based column of the declaration; zero when unknown.
	Column int `json:"column,omitempty"`
}

// String renders the location as "module:line[:column]".
func (l Location) String() string {
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.Module, l.Line, l.Column)
	}

	return fmt.Sprintf("%s:%d", l.Module, l.Line)
}

// ConcreteAction is a transition rule's declaration site plus the ordered
// argument values bound for one firing.
type ConcreteAction struct {
	decl Location
	args []any
	hash uint64
}

// New builds a ConcreteAction and computes its action hash.
// The argument slice is copied; callers may reuse theirs.
func New(decl Location, args ...any) (*ConcreteAction, error) {
	d := xxhash.New()
	var buf [8]byte

	_, _ = d.WriteString(decl.Module)
	binary.LittleEndian.PutUint64(buf[:], uint64(decl.Line))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(decl.Column))
	_, _ = d.Write(buf[:])

	for i, arg := range args {
		enc, err := sonic.ConfigStd.Marshal(arg)
		if err != nil {
			return nil, fmt.Errorf("%w #%d (%T): %v", ErrEncodeArg, i, arg, err)
		}
		// length prefix keeps ["ab","c"] and ["a","bc"] apart
		binary.LittleEndian.PutUint64(buf[:], uint64(len(enc)))
		_, _ = d.Write(buf[:])
		_, _ = d.Write(enc)
	}

	return &ConcreteAction{
		decl: decl,
		args: append([]any(nil), args...),
		hash: d.Sum64(),
	}, nil
}

// MustNew is like New but panics on encoding failure.
// Intended for tests and statically known arguments.
func MustNew(decl Location, args ...any) *ConcreteAction {
	a, err := New(decl, args...)
	if err != nil {
		panic(err)
	}

	return a
}

// Declaration returns where the rule is declared.
func (a *ConcreteAction) Declaration() Location { return a.decl }

// Args returns a copy of the bound argument values in declaration order.
func (a *ConcreteAction) Args() []any { return append([]any(nil), a.args...) }

// Arity is the number of bound arguments.
func (a *ConcreteAction) Arity() int { return len(a.args) }

// Hash returns the action hash: a content hash of declaration and arguments.
func (a *ConcreteAction) Hash() uint64 { return a.hash }

// Equal reports whether a and b denote the same action.
// Nil is equal only to nil.
func (a *ConcreteAction) Equal(b *ConcreteAction) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.decl == b.decl && a.hash == b.hash
}

// String renders the action as "module:line(arg, ...)".
func (a *ConcreteAction) String() string {
	if a == nil {
		return "<nil>"
	}
	s := a.decl.String() + "("
	for i, arg := range a.args {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(arg)
	}

	return s + ")"
}

// MarshalJSON encodes the action as {"declaration":...,"args":[...]}.
func (a *ConcreteAction) MarshalJSON() ([]byte, error) {
	return sonic.ConfigStd.Marshal(struct {
		Declaration Location `json:"declaration"`
		Args        []any    `json:"args"`
	}{a.decl, a.args})
}
