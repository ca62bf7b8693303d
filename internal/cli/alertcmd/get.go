package alertcmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
)

var getCmd = &cobra.Command{
	Use:   "get <alert-id>",
	Short: "Print the full alert rule as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	Cmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := parseAlertID(args[0])
	if err != nil {
		return err
	}

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	raw, err := client.GetAlert(cmd.Context(), id)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format alert response: %w", err)
	}

	pretty.WriteByte('\n')
	_, err = pretty.WriteTo(os.Stdout)
	return err
}

func parseAlertID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid alert id %q: expected a positive integer", arg)
	}
	return id, nil
}
