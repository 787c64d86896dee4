// Package cli implements endorctl, a terminal client for the summary
// backend.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

// Run runs endorctl with args and writes command output to w.
func Run(ctx context.Context, args []string, w io.Writer) error {
	app := &cli.Command{
		Name:   "endorctl",
		Usage:  "Endor Labs project summaries in the terminal",
		Writer: w,
		Commands: []*cli.Command{
			cmdReport(w),
			cmdHealth(w),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return fmt.Errorf("endorctl: %w", err)
	}

	return nil
}
