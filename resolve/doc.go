// Package resolve assigns dense component ids to every primitive
// reachable from a microcontroller's placed outputs and additional
// components, in declaration order, and checks that every reachable
// input marker was placed and every placeholder was replaced.
//
// Resolve does not evaluate the graph and does not optimize it — it only
// walks it once to compute identity and reachability, the way the
// teacher's traversal packages walk a graph once to compute distance or
// ordering.
package resolve
