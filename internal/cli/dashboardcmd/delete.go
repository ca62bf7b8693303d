package dashboardcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/prompts"
	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <uid>",
	Short: "Delete a dashboard",
	Long: `Delete a dashboard by UID. Asks for confirmation unless --yes is given.

Example:
  grafctl dashboard delete a1b2c3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	Cmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	uid := args[0]

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	if !deleteYes {
		confirmed, err := prompts.Confirm(fmt.Sprintf("Delete dashboard %s?", uid), false)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("aborted")
		}
	}

	if err := client.DeleteDashboard(cmd.Context(), uid); err != nil {
		return err
	}

	ui.Successf("Dashboard %s deleted", uid)
	return nil
}
