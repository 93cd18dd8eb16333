package cli

import (
	"context"

	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new project",
	Long: `Add a new project. Name, category, description, deadline and priority
are all required.

Examples:
  pm add "Website relaunch" -c Work -d "New marketing site" --deadline 2026-10-01
  pm add "Tax return" -c Personal -d "2025 filing" --deadline 2026-04-30 -p High`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addCategory    string
	addDescription string
	addDeadline    string
	addPriority    string
)

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Project category")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Project description")
	addCmd.Flags().StringVar(&addDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "Medium", "Priority (Low, Medium, High)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.requireAuth(); err != nil {
		return err
	}

	_, err = app.Store.Create(context.Background(), store.Draft{
		Name:        args[0],
		Category:    addCategory,
		Description: addDescription,
		Deadline:    addDeadline,
		Priority:    addPriority,
	})
	// failures are already surfaced as toasts by the store
	if err != nil {
		return nil
	}
	return nil
}
