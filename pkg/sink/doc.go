// Package sink holds the presentation-side stores that layout results are
// published into.
//
// # Overview
//
// A [Table] is an ordered collection of rows, each row a set of named
// values. A [Record] is a single keyed value set. Both are safe for
// concurrent use, so a UI or HTTP handler can read them while a layout
// pass is being applied.
//
// Rows are stable handles: a [Row] returned by [Table.Append] remains
// valid for writes even as other rows are added or removed around it.
package sink
