// SPDX-License-Identifier: MIT

// Package app runs route searches for the pathkit CLI: it parses the input,
// builds the graph, calls dijkstra.Search and reports the outcome with a
// span, metrics and a log line.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid"
	"github.com/katalvlaran/pathkit/internal/config"
	"github.com/katalvlaran/pathkit/internal/telemetry"
)

// ErrMarkerNotFound indicates the start marker does not occur in the grid.
var ErrMarkerNotFound = errors.New("app: start marker not found")

// Result is the outcome of one run. Path holds rendered node identifiers
// from start to match and is empty when Found is false.
type Result struct {
	Found bool
	Path  []string
	Cost  int64
	Stats dijkstra.Stats
}

// GraphRequest selects the endpoints of an edge-list search.
type GraphRequest struct {
	From       string
	To         string
	Undirected bool
}

// GridRequest selects markers and movement rules of a grid search.
// The goal is any cell holding Goal, so several goals are allowed.
type GridRequest struct {
	Start    rune
	Goal     rune
	Walls    string
	Diagonal bool
}

// Runner executes searches. The zero value logs to slog.Default() with
// unbounded searches.
type Runner struct {
	Logger *slog.Logger
	Search config.SearchConfig
}

// options maps the configured budgets onto search options.
func (r *Runner) options(st *dijkstra.Stats) []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithStats(st)}
	if r.Search.MaxCost > 0 {
		opts = append(opts, dijkstra.WithMaxCost(r.Search.MaxCost))
	}
	if r.Search.MaxFinalized > 0 {
		opts = append(opts, dijkstra.WithMaxFinalized(r.Search.MaxFinalized))
	}

	return opts
}

// RunGraph parses text as an edge list (see ParseEdgeList) and searches
// for the cheapest route from req.From to req.To.
func (r *Runner) RunGraph(ctx context.Context, text string, req GraphRequest) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	ctx, span := tracer().Start(ctx, "Runner.RunGraph", trace.WithAttributes(
		attribute.String("route.from", req.From),
		attribute.String("route.to", req.To),
		attribute.Bool("graph.undirected", req.Undirected),
	))
	defer span.End()
	logger := telemetry.LoggerWithTrace(ctx, r.Logger)

	// 1) Build the graph.
	g, err := ParseEdgeList(text, req.Undirected)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse edge list")
		return Result{}, err
	}
	span.SetAttributes(
		attribute.Int("graph.node_count", g.NodeCount()),
		attribute.Int("graph.edge_count", g.EdgeCount()),
	)
	span.AddEvent("graph.parsed")
	logger.Debug("edge list parsed", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	if !g.HasNode(req.From) {
		logger.Warn("start node not in graph", "node", req.From)
	}

	// 2) Search.
	var st dijkstra.Stats
	started := time.Now()
	path, ok := dijkstra.Search(g, req.From, func(n string) bool { return n == req.To }, r.options(&st)...)
	res := Result{Found: ok, Cost: path.Cost, Path: path.Nodes, Stats: st}

	// 3) Report.
	r.finish(ctx, span, logger, "graph", started, res)

	return res, nil
}

// RunGrid parses text as a grid map and searches from the cell holding
// req.Start to the nearest cell holding req.Goal. Cells whose rune occurs
// in req.Walls are impassable; every move costs 1.
func (r *Runner) RunGrid(ctx context.Context, text string, req GridRequest) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	ctx, span := tracer().Start(ctx, "Runner.RunGrid", trace.WithAttributes(
		attribute.String("grid.start", string(req.Start)),
		attribute.String("grid.goal", string(req.Goal)),
		attribute.Bool("grid.diagonal", req.Diagonal),
	))
	defer span.End()
	logger := telemetry.LoggerWithTrace(ctx, r.Logger)

	// 1) Parse and locate the start marker.
	g, err := grid.Parse(text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse grid")
		return Result{}, err
	}
	start, ok := g.Find(req.Start)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrMarkerNotFound, req.Start)
		span.RecordError(err)
		span.SetStatus(codes.Error, "start marker")
		return Result{}, err
	}

	// 2) Build the graph over passable cells.
	conn := grid.Conn4
	if req.Diagonal {
		conn = grid.Conn8
	}
	passable := func(c rune) bool { return !strings.ContainsRune(req.Walls, c) }
	cg := g.ToGraph(passable, grid.WithConnectivity(conn))
	w, h := g.Size()
	span.SetAttributes(
		attribute.Int("grid.width", w),
		attribute.Int("grid.height", h),
		attribute.Int("graph.edge_count", cg.EdgeCount()),
	)
	span.AddEvent("grid.parsed")
	logger.Debug("grid parsed", "width", w, "height", h, "start", start.String(), "goals", len(g.FindAll(req.Goal)))

	// 3) Search for the nearest goal cell.
	isGoal := func(p grid.Point) bool {
		c, err := g.At(p)
		return err == nil && c == req.Goal
	}
	var st dijkstra.Stats
	started := time.Now()
	path, found := dijkstra.Search(cg, start, isGoal, r.options(&st)...)
	res := Result{Found: found, Cost: path.Cost, Stats: st}
	for _, p := range path.Nodes {
		res.Path = append(res.Path, p.String())
	}

	// 4) Report.
	r.finish(ctx, span, logger, "grid", started, res)

	return res, nil
}

// finish records span attributes, metrics and the summary log line.
func (r *Runner) finish(ctx context.Context, span trace.Span, logger *slog.Logger, kind string, started time.Time, res Result) {
	elapsed := time.Since(started)
	span.SetAttributes(
		attribute.Bool("route.found", res.Found),
		attribute.Int64("route.cost", res.Cost),
		attribute.Int("search.finalized", res.Stats.Finalized),
		attribute.Int("search.pushes", res.Stats.Pushes),
		attribute.Int("search.stale", res.Stats.Stale),
	)
	span.SetStatus(codes.Ok, "")
	recordSearch(ctx, kind, elapsed, res.Stats.Finalized, res.Found)

	logger.Info("search finished",
		slog.String("kind", kind),
		slog.Bool("found", res.Found),
		slog.Int64("cost", res.Cost),
		slog.Int("hops", max(len(res.Path)-1, 0)),
		slog.Int("finalized", res.Stats.Finalized),
		slog.Duration("elapsed", elapsed),
	)
}
