// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathkit/internal/app"
	"github.com/katalvlaran/pathkit/internal/config"
	"github.com/katalvlaran/pathkit/internal/telemetry"
)

// errBadMarker indicates a --start or --goal value that is not one character.
var errBadMarker = errors.New("marker must be a single character")

// cli carries state shared by the root command and its subcommands.
type cli struct {
	configPath string
	logLevel   string
	trace      bool

	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

// newRootCmd builds the command tree. Callers run it through c.execute so
// telemetry is flushed whatever the outcome.
func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}
	root := &cobra.Command{
		Use:           "pathkit",
		Short:         "Cheapest-route search over edge lists and text maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&c.trace, "trace", false, "export traces and metrics to stderr")

	root.AddCommand(newGraphCmd(c), newGridCmd(c))

	return root, c
}

// execute runs root and then shuts telemetry down. Cobra skips post-run
// hooks after a failed RunE, so the flush lives here to keep error spans.
func (c *cli) execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if c.shutdown != nil {
		err = errors.Join(err, c.shutdown(context.WithoutCancel(ctx)))
	}

	return err
}

// setup loads the configuration, applies flag overrides and starts logging
// and telemetry. Logs and telemetry go to stderr, results to stdout.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.trace {
		cfg.Telemetry.TraceExporter = "stdout"
		cfg.Telemetry.MetricExporter = "stdout"
	}

	logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	shutdown, err := telemetry.Init(cmd.Context(), cfg.Telemetry, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	c.cfg, c.logger, c.shutdown = cfg, logger, shutdown
	logger.Debug("configuration loaded", "config", c.configPath, "trace_exporter", cfg.Telemetry.TraceExporter)

	return nil
}

func (c *cli) runner() *app.Runner {
	return &app.Runner{Logger: c.logger, Search: c.cfg.Search}
}

func newGraphCmd(c *cli) *cobra.Command {
	var req app.GraphRequest
	cmd := &cobra.Command{
		Use:   "graph [FILE]",
		Short: "Search an edge list (\"from to [weight]\" per line)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := c.runner().RunGraph(cmd.Context(), text, req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().StringVar(&req.From, "from", "", "start node")
	cmd.Flags().StringVar(&req.To, "to", "", "target node")
	cmd.Flags().BoolVar(&req.Undirected, "undirected", false, "treat every line as a two-way edge")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newGridCmd(c *cli) *cobra.Command {
	var (
		start, goal, walls string
		diagonal           bool
	)
	cmd := &cobra.Command{
		Use:   "grid [FILE]",
		Short: "Search a text map from the start marker to the nearest goal marker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.GridRequest{Walls: c.cfg.Grid.Walls, Diagonal: c.cfg.Grid.Diagonal}
			var err error
			if req.Start, err = marker(flagOr(cmd, "start", start, c.cfg.Grid.Start)); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if req.Goal, err = marker(flagOr(cmd, "goal", goal, c.cfg.Grid.Goal)); err != nil {
				return fmt.Errorf("--goal: %w", err)
			}
			if cmd.Flags().Changed("walls") {
				req.Walls = walls
			}
			if cmd.Flags().Changed("diagonal") {
				req.Diagonal = diagonal
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := c.runner().RunGrid(cmd.Context(), text, req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "S", "start marker")
	cmd.Flags().StringVar(&goal, "goal", "E", "goal marker, any matching cell qualifies")
	cmd.Flags().StringVar(&walls, "walls", "#", "impassable characters")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal moves")

	return cmd
}

// flagOr returns the flag value when it was set explicitly, else fallback.
func flagOr(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}

	return fallback
}

func marker(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: %q", errBadMarker, s)
	}

	return r[0], nil
}

// readInput reads the file named by args[0], or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}

func printResult(w io.Writer, res app.Result) {
	if !res.Found {
		fmt.Fprintln(w, "no path")
		return
	}
	fmt.Fprintf(w, "path: %s\n", strings.Join(res.Path, " -> "))
	fmt.Fprintf(w, "cost: %d\n", res.Cost)
}
