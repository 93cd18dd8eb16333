package cli

import (
	"fmt"
	"os"

	"github.com/achaendus12-spec/my-project-manager/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export projects to JSON or CSV",
	Long: `Export the full project collection. The format follows the file
extension unless --format is given.

Examples:
  pm export projects.json
  pm export report.csv
  pm export - --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportFormat string

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format (json or csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	target := args[0]
	format := exportFormat
	if format == "" {
		format = "json"
		if len(target) > 4 && target[len(target)-4:] == ".csv" {
			format = "csv"
		}
	}

	projects := app.Store.Projects()

	var data []byte
	switch format {
	case "json":
		data, err = export.ToJSON(projects)
		if err != nil {
			return err
		}
	case "csv":
		data = export.ToCSV(projects)
	default:
		return fmt.Errorf("unknown format: %s (use json or csv)", format)
	}

	if target == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d projects to %s\n", len(projects), target)
	return nil
}
