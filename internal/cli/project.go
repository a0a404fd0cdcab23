package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openproteomics/pride/pkg/archive"
	"github.com/openproteomics/pride/pkg/errors"
	"github.com/openproteomics/pride/pkg/export"
)

// projectOpts holds the command-line flags for the project command.
type projectOpts struct {
	refresh bool   // bypass HTTP cache
	output  string // export file path (.csv or .json)
}

// projectCommand creates the "project" command, which fetches a single
// dataset record by accession and prints its metadata.
func (c *CLI) projectCommand() *cobra.Command {
	opts := projectOpts{}

	cmd := &cobra.Command{
		Use:   "project <accession>",
		Short: "Fetch one dataset record by accession",
		Long: `Fetch a single dataset record from the PRIDE Archive by accession.

Examples:
  pride project PXD000001
  pride project PXD000001 -o record.csv
  pride project PXD000001 --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProject(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export record to file (.csv or .json)")

	return cmd
}

func (c *CLI) runProject(cmd *cobra.Command, accession string, opts projectOpts) error {
	ctx := cmd.Context()
	client, cleanup := c.newArchiveClient()
	defer cleanup()

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", accession))
	spin.Start()

	project, err := client.Project(ctx, accession, opts.refresh)
	spin.Stop()
	if err != nil {
		if spin.Cancelled() {
			return ctx.Err()
		}
		return fmt.Errorf("%s", errors.UserMessage(err))
	}

	printProject(project)

	if opts.output != "" {
		if err := export.Export(archive.RowHeader(), [][]string{project.Row()}, opts.output); err != nil {
			return fmt.Errorf("%s", errors.UserMessage(err))
		}
		printFile(opts.output)
	}

	return nil
}

// printProject prints a labeled detail view of a single record.
func printProject(p archive.Project) {
	printNewline()
	fmt.Println(StyleTitle.Render(p.Accession()) + "  " + StyleDim.Render(p.SubmissionType()))
	printNewline()
	printKeyValue("Title", p.Title())
	printKeyValue("Published", p.PublicationDate().Format("2006-01-02"))
	printKeyValue("Assays", fmt.Sprintf("%d", p.NumAssays()))
	printKeyValue("Species", strings.Join(p.Species(), archive.ListSeparator))
	printKeyValue("Tissues", strings.Join(p.Tissues(), archive.ListSeparator))
	printKeyValue("PTMs", strings.Join(p.PtmNames(), archive.ListSeparator))
	printKeyValue("Instruments", strings.Join(p.InstrumentNames(), archive.ListSeparator))
	printKeyValue("Tags", strings.Join(p.Tags(), archive.ListSeparator))
	printNewline()
	printDetail("%s", p.Description())
	printNewline()
}
