package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a project",
	Long: `Delete a project after confirmation.

Examples:
  pm delete 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	deleted, err := app.Store.Delete(context.Background(), p.ID)
	if err != nil {
		return nil
	}
	if !deleted {
		fmt.Println("Cancelled.")
	}
	return nil
}
