package dashboardcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
)

var getByTitle bool

var getCmd = &cobra.Command{
	Use:   "get <uid>",
	Short: "Print a dashboard document as JSON",
	Long: `Fetch a dashboard by UID and print the full document.

With --by-title the argument is an exact dashboard title instead of a UID.

Examples:
  grafctl dashboard get a1b2c3
  grafctl dashboard get --by-title "API Gateway"`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getByTitle, "by-title", false, "Look the dashboard up by exact title")
	Cmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	var dashboard any
	if getByTitle {
		d, err := client.GetDashboardByTitle(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("no dashboard with title %q", args[0])
		}
		dashboard = d
	} else {
		d, err := client.GetDashboard(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		dashboard = d
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dashboard)
}
