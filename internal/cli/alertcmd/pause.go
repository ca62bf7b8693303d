package alertcmd

import (
	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/ui"
)

var pauseCmd = &cobra.Command{
	Use:   "pause <alert-id>",
	Short: "Pause an alert rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPaused(cmd, args[0], true)
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause <alert-id>",
	Short: "Resume a paused alert rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPaused(cmd, args[0], false)
	},
}

func init() {
	Cmd.AddCommand(pauseCmd)
	Cmd.AddCommand(unpauseCmd)
}

func setPaused(cmd *cobra.Command, arg string, paused bool) error {
	id, err := parseAlertID(arg)
	if err != nil {
		return err
	}

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	if err := client.PauseAlert(cmd.Context(), id, paused); err != nil {
		return err
	}

	if paused {
		ui.Successf("Alert %d paused", id)
	} else {
		ui.Successf("Alert %d resumed", id)
	}
	return nil
}
