package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/doctor"
	"github.com/grafctl/grafctl/internal/ui"
)

var doctorInstall bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check companion command-line tools",
	Long: `Check that the external tools the Grafana workflows rely on are
available on PATH: curl, jq, npm, and prom (prom-cli).

With --install, prom-cli is installed through npm when missing.

Examples:
  grafctl doctor
  grafctl doctor --install`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorInstall, "install", false,
		"Install prom-cli via npm if it is missing")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("Checking companion tools:")

	missing := 0
	for _, result := range doctor.CheckAll() {
		if result.Found {
			ui.ToolStatus(result.Tool.Name, result.Path, true)
		} else {
			ui.ToolStatus(result.Tool.Name, "not found ("+result.Tool.InstallHint+")", false)
			missing++
		}
	}

	if doctorInstall {
		fmt.Println()
		if err := ui.WithProgress("Installing prom-cli", func() error {
			return doctor.InstallPromCLI(cmd.Context())
		}); err != nil {
			return err
		}
		ui.Successf("prom-cli is available")
		return nil
	}

	if missing > 0 {
		fmt.Printf("\n%d tool(s) missing. Run 'grafctl doctor --install' to install prom-cli.\n", missing)
	}

	return nil
}
