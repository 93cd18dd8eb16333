package cli

import (
	"context"

	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a project's details",
	Long: `Edit a project. Unspecified flags keep their current values.

Examples:
  pm edit 3f2a --name "Website relaunch v2"
  pm edit 3f2a --deadline 2026-11-15 -p High`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editName        string
	editCategory    string
	editDescription string
	editDeadline    string
	editPriority    string
)

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "Project name")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "Project category")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "Project description")
	editCmd.Flags().StringVar(&editDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "Priority (Low, Medium, High)")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	d := store.Draft{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Deadline:    p.Deadline,
		Priority:    p.Priority,
	}
	if cmd.Flags().Changed("name") {
		d.Name = editName
	}
	if cmd.Flags().Changed("category") {
		d.Category = editCategory
	}
	if cmd.Flags().Changed("description") {
		d.Description = editDescription
	}
	if cmd.Flags().Changed("deadline") {
		d.Deadline = editDeadline
	}
	if cmd.Flags().Changed("priority") {
		d.Priority = editPriority
	}

	_, err = app.Store.Update(context.Background(), d)
	if err != nil {
		return nil
	}
	return nil
}
