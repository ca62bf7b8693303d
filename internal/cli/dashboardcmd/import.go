package dashboardcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	importFolderID  int64
	importOverwrite bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a dashboard from a JSON file",
	Long: `Import a dashboard document from a local JSON file. The document's id
is stripped and its version reset, so Grafana assigns fresh ones.

Examples:
  grafctl dashboard import dashboard.json
  grafctl dashboard import dashboard.json --folder-id 3 --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().Int64Var(&importFolderID, "folder-id", 0, "Target folder id (0 for General)")
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "Overwrite an existing dashboard")
	Cmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputFile, err)
	}

	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("%s is not a valid dashboard document: %w", inputFile, err)
	}

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Imported from %s", inputFile)
	response, err := client.ImportDashboard(cmd.Context(), document, importFolderID, importOverwrite, message)
	if err != nil {
		return err
	}

	ui.Successf("Dashboard imported: uid %s, url %s", response.UID, response.URL)
	return nil
}
