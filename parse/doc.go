// SPDX-License-Identifier: MIT

// Package parse turns line-oriented puzzle and fixture text into Go values.
//
// Text helpers (trimmed input, one record per line):
//
//   - SingleLine: first line only.
//   - Lines:      every line, trimmed.
//   - Matrix:     every line split by a separator.
//   - Dict/Tuples: "key<sep>v1<sep>v2" records, as a map or in input order.
//
// A separator made only of whitespace splits on runs of whitespace
// (strings.Fields), so "1  2 3 " yields three fields, not five.
//
// Conversions (Ints, IntMatrix, IntDict, IntDictSlices, IntTuples) parse
// base-10 int64 values and stop at the first bad token with ErrNotInteger.
//
// Errors:
//
//   - ErrEmptyInput:       SingleLine on blank input.
//   - ErrMissingSeparator: a Dict/Tuples record without the key separator.
//   - ErrNotInteger:       a token that is not a base-10 int64.
package parse
