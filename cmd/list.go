package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a1s/w1s/internal/render"
)

type listOptions struct {
	filter string
	sort   string
	desc   bool
	page   int
}

func newListCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print one page of the countries table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := bootstrap(w1sFlags)
			if err != nil {
				return err
			}
			defer e.close()

			return runList(cmd.Context(), cmd.OutOrStdout(), e, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Case-insensitive country name filter")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "Sort column (name, code, awsRegion, currency)")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "Sort descending")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to print, clamped to the available pages")

	return cmd
}

// sortField resolves a sort column by field or column name.
func sortField(col string) (string, error) {
	h := (&render.Country{}).Header()
	for _, c := range h {
		if strings.EqualFold(col, c.Field) || strings.EqualFold(col, c.Name) {
			return c.Field, nil
		}
	}

	return "", fmt.Errorf("unknown sort column %q (want one of %s)", col, strings.Join(h.Fields(), ", "))
}

func runList(ctx context.Context, w io.Writer, e *env, opts listOptions) error {
	t, err := e.tableModel()
	if err != nil {
		return err
	}
	defer t.Stop()

	if opts.sort != "" {
		f, err := sortField(opts.sort)
		if err != nil {
			return err
		}
		t.SetSort(f)
		if opts.desc {
			t.SetSort(f)
		}
	}
	t.SetNameFilter(opts.filter)
	t.SetPage(opts.page)

	// The page is clamped once the data lands.
	if err := t.Refresh(ctx); err != nil {
		return err
	}

	return printTable(w, t.Peek())
}

