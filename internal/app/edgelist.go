// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/parse"
)

// ErrBadEdgeLine indicates an edge-list line that is not "from to [weight]".
var ErrBadEdgeLine = errors.New("app: malformed edge line")

// ParseEdgeList reads one edge per line as "from to [weight]", fields
// separated by whitespace. The weight defaults to core.DefaultWeight and must
// be a non-negative integer. Blank lines and lines starting with '#' are
// skipped. With undirected set, each line adds both directions.
//
// Errors carry the 1-based line number and wrap ErrBadEdgeLine.
func ParseEdgeList(text string, undirected bool) (*core.Graph[string], error) {
	// parse.Matrix drops leading blank lines; keep line numbers absolute.
	offset := strings.Count(text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))], "\n")

	g := core.NewGraph[string]()
	for i, fields := range parse.Matrix(text, " ") {
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		line := offset + i + 1
		if len(fields) > 3 || len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 or 3 fields, got %d", ErrBadEdgeLine, line, len(fields))
		}
		w := core.DefaultWeight
		if len(fields) == 3 {
			v, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: weight %q is not a non-negative integer", ErrBadEdgeLine, line, fields[2])
			}
			w = v
		}

		if undirected {
			g.AddEdgeUndirectedWeighted(fields[0], fields[1], w)
		} else {
			g.AddEdgeDirectedWeighted(fields[0], fields[1], w)
		}
	}

	return g, nil
}
