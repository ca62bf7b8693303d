package dashboardcmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/format"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions <uid>",
	Short: "Show dashboard permissions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := shared.Client()
		if err != nil {
			return err
		}

		permissions, err := client.DashboardPermissions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		format.PermissionList(os.Stdout, permissions)
		return nil
	},
}

func init() {
	Cmd.AddCommand(permissionsCmd)
}
