// Package emit turns a resolved, optimized microcontroller into a
// serializable document and assigns every component a grid position.
// Neither concern is in scope for this module beyond an external
// interface and a reference implementation: the real XML schema, pretty-
// printing and PNG icon packing used by the host simulator are out of
// scope — DefaultEmitter produces a JSON document with the same
// information content instead, and GridLayouter assigns positions with a
// simple, deterministic, side-effect-free strategy.
package emit
