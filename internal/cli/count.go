package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openproteomics/pride/pkg/errors"
)

// countCommand creates the "count" command, which prints the total number
// of public projects in the archive.
func (c *CLI) countCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the total number of public projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, cleanup := c.newArchiveClient()
			defer cleanup()

			total, err := client.Count(ctx, refresh)
			if err != nil {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}

			fmt.Println(StyleNumber.Render(fmt.Sprintf("%d", total)) + " " + StyleDim.Render("public projects"))
			printNextStep("Browse them", "pride browse")
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}
