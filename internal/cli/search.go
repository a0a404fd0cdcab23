package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openproteomics/pride/pkg/archive"
	"github.com/openproteomics/pride/pkg/errors"
	"github.com/openproteomics/pride/pkg/export"
)

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	page     int    // zero-based page number
	pageSize int    // records per page
	refresh  bool   // bypass HTTP cache
	output   string // export file path (.csv or .json)
}

// searchCommand creates the "search" command, which queries the archive
// and prints one page of matching projects.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{pageSize: archive.DefaultPageSize}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search public projects",
		Long: `Search public projects in the PRIDE Archive. An empty query matches
all projects.

Examples:
  pride search "reporter ions"
  pride search human --page 2 --page-size 25
  pride search phospho -o results.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return c.runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 0, "page number (zero-based)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", opts.pageSize, "records per page")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export records to file (.csv or .json)")

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, query string, opts searchOpts) error {
	ctx := cmd.Context()
	client, cleanup := c.newArchiveClient()
	defer cleanup()

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spin := newSpinnerWithContext(ctx, "Searching...")
	spin.Start()

	collection, err := client.Search(ctx, query, opts.page, opts.pageSize, opts.refresh)
	spin.Stop()
	if err != nil {
		if spin.Cancelled() {
			return ctx.Err()
		}
		return fmt.Errorf("%s", errors.UserMessage(err))
	}
	prog.done(collection.String())

	records := collection.Records()
	if len(records) == 0 {
		printInfo("No matching projects")
		return nil
	}

	fmt.Println(renderTable(summaryHeader(), summaryRows(records)))
	printResultStats(collection.Len(), collection.PageNumber(), collection.PageSize())

	if opts.output != "" {
		if err := export.Export(archive.RowHeader(), collection.Rows(), opts.output); err != nil {
			return fmt.Errorf("%s", errors.UserMessage(err))
		}
		printFile(opts.output)
	}

	return nil
}
