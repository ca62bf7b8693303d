package configcmd

import "github.com/spf13/cobra"

// Cmd is the parent command for configuration management
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage grafctl configuration",
	Long: `Commands for managing grafctl global configuration and profiles.

Examples:
  grafctl config init    Initialize global config (~/.grafctl/)
  grafctl config show    Show global configuration and the active profile`,
}
