package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"st"},
	Short:   "Manage project checklists",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add [id] [text]",
	Short: "Add a checklist item to a project",
	Long: `Add a checklist item. Checklist completion drives the project's
progress percentage.

Examples:
  pm subtask add 3f2a "Write landing page copy"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSubtaskAdd,
}

var subtaskListCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "List a project's checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubtaskList,
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle [id] [subtask-id]",
	Short: "Toggle a checklist item's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskToggle,
}

var subtaskDeleteCmd = &cobra.Command{
	Use:   "delete [id] [subtask-id]",
	Short: "Delete a checklist item",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskDelete,
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskListCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
	subtaskCmd.AddCommand(subtaskDeleteCmd)
}

func runSubtaskAdd(cmd *cobra.Command, args []string) error {
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

	text := strings.Join(args[1:], " ")
	if _, err := app.Store.AddSubtask(context.Background(), p.ID, text); err != nil {
		return nil
	}
	fmt.Println("Subtask added.")
	return nil
}

func runSubtaskList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := app.findProject(args[0])
	if err != nil {
		return err
	}

	if len(p.Subtasks) == 0 {
		fmt.Println("No subtasks.")
		return nil
	}

	fmt.Printf("\n☑ Checklist for %s (%d%%)\n", p.Name, p.Progress())
	for _, st := range p.Subtasks {
		icon := "[ ]"
		if st.Completed {
			icon = "[x]"
		}
		fmt.Printf("  %s  %-20s  %s\n", icon, st.ID, st.Text)
	}
	fmt.Println()
	return nil
}

func runSubtaskToggle(cmd *cobra.Command, args []string) error {
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

	row, err := app.Store.ToggleSubtask(context.Background(), p.ID, args[1])
	if err != nil {
		return nil
	}
	fmt.Printf("Progress: %d%%\n", row.Progress())
	return nil
}

func runSubtaskDelete(cmd *cobra.Command, args []string) error {
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

	if _, err := app.Store.DeleteSubtask(context.Background(), p.ID, args[1]); err != nil {
		return nil
	}
	fmt.Println("Subtask deleted.")
	return nil
}
