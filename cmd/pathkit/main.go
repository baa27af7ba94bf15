// SPDX-License-Identifier: MIT

// Command pathkit finds cheapest routes in edge-list files and text maps.
//
//	pathkit graph roads.txt --from depot --to school
//	pathkit grid maze.txt --diagonal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, c := newRootCmd()
	if err := c.execute(ctx, root); err != nil {
		fmt.Fprintln(os.Stderr, "pathkit:", err)
		stop()
		os.Exit(1)
	}
}
