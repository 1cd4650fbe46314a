// SPDX-License-Identifier: MIT

// Package action describes a single firing of a transition rule: where the
// rule is declared and which concrete values its parameters were bound to.
//
// A ConcreteAction is immutable once built. Two firings are considered the
// same action when their declarations are equal and their argument lists
// encode to the same canonical bytes; the 64-bit "action hash" summarizes
// exactly that and is what redundancy detection compares.
//
// Arguments are encoded with sonic's standard-compatible configuration
// (sorted map keys) and hashed with xxhash, so the hash depends only on
// argument content, never on pointer identity:
//
//	a, _ := action.New(action.Location{Module: "Bank", Line: 12}, "alice", 10)
//	b, _ := action.New(action.Location{Module: "Bank", Line: 12}, "alice", 10)
//	a.Equal(b) // true
//	a.Hash() == b.Hash() // true
package action
