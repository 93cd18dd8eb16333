package cli

import (
	"fmt"
	"os"

	"github.com/achaendus12-spec/my-project-manager/internal/export"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import projects from a JSON export",
	Long: `Import projects from a previously exported JSON document. You will be
asked whether the file should replace the current collection or merge into
it; on a merge, existing projects win id conflicts.

Examples:
  pm import projects.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	changed, err := export.ImportFile(data, app.Store, app.Surface)
	if err != nil {
		return nil
	}
	if !changed {
		fmt.Println("Cancelled.")
	}
	return nil
}
