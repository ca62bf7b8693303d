package dashboardcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/ui"
)

var exportWithMeta bool

var exportCmd = &cobra.Command{
	Use:   "export <uid> <file>",
	Short: "Export a dashboard to a JSON file",
	Long: `Export a dashboard document to a local JSON file.

By default only the dashboard document is written; --with-meta keeps the
folder and version metadata too.

Examples:
  grafctl dashboard export a1b2c3 dashboard.json
  grafctl dashboard export a1b2c3 dashboard.json --with-meta`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportWithMeta, "with-meta", false, "Include dashboard metadata in the export")
	Cmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	uid, outputFile := args[0], args[1]

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	dashboard, err := client.GetDashboard(cmd.Context(), uid)
	if err != nil {
		return err
	}

	var document any = dashboard.Dashboard
	if exportWithMeta {
		document = dashboard
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}

	outputPath, err := filepath.Abs(outputFile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	ui.Successf("Dashboard exported to %s", outputPath)
	return nil
}
