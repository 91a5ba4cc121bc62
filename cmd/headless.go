package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runHeadless loads the first table page and the continent tallies
// concurrently, then prints both.
func runHeadless(ctx context.Context, w io.Writer, e *env) error {
	t, err := e.tableModel()
	if err != nil {
		return err
	}
	defer t.Stop()
	c, err := e.chartModel()
	if err != nil {
		return err
	}
	defer c.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return t.Refresh(gctx)
	})
	g.Go(func() error {
		return c.Refresh(gctx)
	})
	if err := g.Wait(); err != nil {
		e.logger.Error("Headless load failed", zap.Error(err))
		return err
	}

	if _, err := fmt.Fprintln(w, "COUNTRIES"); err != nil {
		return err
	}
	if err := printTable(w, t.Peek()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nCONTINENTS"); err != nil {
		return err
	}
	tt, skipped := c.Peek()

	return printTallies(w, tt, len(skipped))
}
