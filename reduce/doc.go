// SPDX-License-Identifier: MIT

// Package reduce marks action edges that only repeat an interleaving already
// present in the network.
//
// Two actions a and b commute at state u when u -a-> v -b-> z and
// u -b-> w -a-> z both exist. Both orderings reach z, so covering one of the
// two second-level edges is enough to exercise the pair; the other, w -a-> z,
// is marked redundant. Detection is best effort: a missed diamond is fine, a
// wrong mark is not, so endpoints and action hashes must match exactly.
package reduce
