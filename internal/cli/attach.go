package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Manage project attachments",
}

var attachAddCmd = &cobra.Command{
	Use:   "add [id] [file]",
	Short: "Upload a file and attach it to a project",
	Long: `Upload a local file to the server's attachment storage and record its
URL on the project.

Examples:
  pm attach add 3f2a ./mockups.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runAttachAdd,
}

var attachListCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "List a project's attachments",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttachList,
}

func init() {
	attachCmd.AddCommand(attachAddCmd)
	attachCmd.AddCommand(attachListCmd)
}

func runAttachAdd(cmd *cobra.Command, args []string) error {
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

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	filename := filepath.Base(args[1])
	if _, err := app.Store.RegisterAttachment(context.Background(), p.ID, filename, data); err != nil {
		return nil
	}
	return nil
}

func runAttachList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := app.findProject(args[0])
	if err != nil {
		return err
	}

	if len(p.Attachments) == 0 {
		fmt.Println("No attachments.")
		return nil
	}

	fmt.Printf("\n📎 Attachments for %s\n", p.Name)
	for _, a := range p.Attachments {
		fmt.Printf("  %-30s  %s\n", a.Name, a.URL)
	}
	fmt.Println()
	return nil
}
