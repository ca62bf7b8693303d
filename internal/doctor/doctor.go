// Package doctor verifies the external command-line tools the Grafana
// workflow documentation relies on, and can install the prom-cli helper.
package doctor

import (
	"context"
	"fmt"
	"os/exec"
)

// Tool is an external companion tool grafctl's workflows depend on
type Tool struct {
	// Name is the binary looked up on PATH
	Name string

	// Description says what the tool is used for
	Description string

	// InstallHint tells the user how to get the tool
	InstallHint string
}

// CompanionTools are the tools checked by `grafctl doctor`
var CompanionTools = []Tool{
	{Name: "curl", Description: "ad-hoc Grafana API calls", InstallHint: "install via your system package manager"},
	{Name: "jq", Description: "JSON response filtering", InstallHint: "install via your system package manager"},
	{Name: "npm", Description: "installs prom-cli", InstallHint: "install Node.js (includes npm)"},
	{Name: "prom", Description: "direct Prometheus queries", InstallHint: "npm install -g prom-cli"},
}

// CheckResult is the outcome of a single tool check
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// Override points for tests
var (
	lookPath = exec.LookPath
	runNpm   = func(ctx context.Context, args ...string) ([]byte, error) {
		return exec.CommandContext(ctx, "npm", args...).CombinedOutput()
	}
)

// Check looks up a single tool on PATH
func Check(tool Tool) CheckResult {
	path, err := lookPath(tool.Name)
	return CheckResult{Tool: tool, Found: err == nil, Path: path}
}

// CheckAll checks every companion tool
func CheckAll() []CheckResult {
	results := make([]CheckResult, 0, len(CompanionTools))
	for _, tool := range CompanionTools {
		results = append(results, Check(tool))
	}
	return results
}

// InstallPromCLI installs prom-cli through npm. Already-installed is
// success without reinstalling; a missing npm is a hard error.
func InstallPromCLI(ctx context.Context) error {
	if _, err := lookPath("prom"); err == nil {
		return nil
	}

	if _, err := lookPath("npm"); err != nil {
		return fmt.Errorf("npm not found: npm is required to install prom-cli (install Node.js first)")
	}

	output, err := runNpm(ctx, "install", "-g", "prom-cli")
	if err != nil {
		return fmt.Errorf("failed to install prom-cli: %w\n%s", err, output)
	}

	return nil
}
