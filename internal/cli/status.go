package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [id] [value]",
	Short: "Advance or set a project's status",
	Long: `Advance a project's status one step in the cycle
Not Started → In Progress → Completed → Not Started, or set it directly.

Examples:
  pm status 3f2a
  pm status 3f2a "In Progress"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.requireAuth(); err != nil {
		return err
	}

	p, err := app.findProject(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	var row = p
	if len(args) == 2 {
		row, err = app.Store.SetStatus(ctx, p.ID, args[1])
	} else {
		row, err = app.Store.AdvanceStatus(ctx, p.ID)
	}
	if err != nil {
		return nil
	}

	fmt.Printf("%s: %s\n", row.Name, row.Status)
	return nil
}
