package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/skills"
	"github.com/grafctl/grafctl/internal/ui"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the Grafana skill for AI assistants",
	Long: `Install the bundled Grafana skill document into AI assistant skill
directories so the assistant knows how to drive grafctl.

Supported assistants: Claude Code (~/.claude/skills) and Cursor
(~/.cursor/skills-cursor).

Examples:
  grafctl skill install
  grafctl skill status
  grafctl skill uninstall`,
}

var skillInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Grafana skill for all supported assistants",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, assistant := range skills.AllAssistants() {
			if err := skills.Install(assistant); err != nil {
				return fmt.Errorf("failed to install skill for %s: %w", skills.AssistantName(assistant), err)
			}
			path, _ := skills.SkillPath(assistant)
			ui.Step("%s: %s", skills.AssistantName(assistant), path)
		}
		ui.Successf("Grafana skill installed")
		return nil
	},
}

var skillUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the Grafana skill from all supported assistants",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, assistant := range skills.AllAssistants() {
			if err := skills.Uninstall(assistant); err != nil {
				return fmt.Errorf("failed to uninstall skill for %s: %w", skills.AssistantName(assistant), err)
			}
		}
		ui.Successf("Grafana skill removed")
		return nil
	},
}

var skillStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the skill is installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, assistant := range skills.AllAssistants() {
			path, err := skills.SkillPath(assistant)
			if err != nil {
				return err
			}
			if skills.IsInstalled(assistant) {
				ui.ToolStatus(skills.AssistantName(assistant), path, true)
			} else {
				ui.ToolStatus(skills.AssistantName(assistant), "not installed", false)
			}
		}
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillInstallCmd)
	skillCmd.AddCommand(skillUninstallCmd)
	skillCmd.AddCommand(skillStatusCmd)
}
