package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage project notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [id] [text]",
	Short: "Add a note to a project",
	Long: `Add a free-text note to a project.

Examples:
  pm note add 3f2a "Met with the designer, mockups due Friday"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "List a project's notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteList,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [id] [note-id]",
	Short: "Delete a note from a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteDelete,
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
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
	if _, err := app.Store.AddNote(context.Background(), p.ID, text); err != nil {
		return nil
	}
	fmt.Println("Note added.")
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := app.findProject(args[0])
	if err != nil {
		return err
	}

	if len(p.Notes) == 0 {
		fmt.Println("No notes.")
		return nil
	}

	fmt.Printf("\n📝 Notes for %s\n", p.Name)
	for _, n := range p.Notes {
		fmt.Printf("  %-20s  %s  %s\n", n.ID, n.Timestamp.Format("2006-01-02 15:04"), n.Text)
	}
	fmt.Println()
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
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

	if _, err := app.Store.DeleteNote(context.Background(), p.ID, args[1]); err != nil {
		return nil
	}
	fmt.Println("Note deleted.")
	return nil
}
