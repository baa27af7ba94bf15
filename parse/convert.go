// SPDX-License-Identifier: MIT
//
// File: convert.go
// Role: Integer conversions over the shapes produced by text.go.
// Policy:
//   - Tokens are parsed as-is (no trimming) in base 10 into int64.
//   - The first bad token aborts the conversion with ErrNotInteger.

package parse

import (
	"fmt"
	"strconv"
)

// IntTuple is a Tuple whose key and values are integers.
type IntTuple struct {
	Key    int64
	Values []int64
}

func atoi(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, tok)
	}

	return v, nil
}

// Ints converts every token of xs.
func Ints(xs []string) ([]int64, error) {
	out := make([]int64, len(xs))
	for i, x := range xs {
		v, err := atoi(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// IntMatrix converts every row of m.
func IntMatrix(m [][]string) ([][]int64, error) {
	out := make([][]int64, len(m))
	for i, row := range m {
		r, err := Ints(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// IntDict converts both keys and values of d.
func IntDict(d map[string]string) (map[int64]int64, error) {
	out := make(map[int64]int64, len(d))
	for k, v := range d {
		ik, err := atoi(k)
		if err != nil {
			return nil, err
		}
		iv, err := atoi(v)
		if err != nil {
			return nil, err
		}
		out[ik] = iv
	}

	return out, nil
}

// IntDictSlices converts the keys and value lists of d, as produced by Dict.
func IntDictSlices(d map[string][]string) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(d))
	for k, vs := range d {
		ik, err := atoi(k)
		if err != nil {
			return nil, err
		}
		iv, err := Ints(vs)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		out[ik] = iv
	}

	return out, nil
}

// IntTuples converts the output of Tuples, keeping record order.
func IntTuples(ts []Tuple) ([]IntTuple, error) {
	out := make([]IntTuple, len(ts))
	for i, t := range ts {
		k, err := atoi(t.Key)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		vs, err := Ints(t.Values)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = IntTuple{Key: k, Values: vs}
	}

	return out, nil
}
