package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/agentfs/update-version/pkg/logging"
	"github.com/agentfs/update-version/pkg/release"
	"github.com/agentfs/update-version/pkg/version"
)

// Styles for the plan table and summaries
var (
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff00"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var displayLogger = logging.NewLogger("display")

// displayPlan renders the current → proposed table for every component and
// warns about manifests that are missing on disk.
func displayPlan(plans []release.ComponentPlan, newVersion string) {
	fmt.Println("Proposed versions:")

	var rows [][]string
	for _, plan := range plans {
		if plan.Exists {
			rows = append(rows, []string{
				plan.Component.Name,
				plan.Component.VersionFile,
				plan.CurrentVersion,
				highlightStyle.Render(newVersion),
				version.Increment(plan.CurrentVersion, newVersion),
			})
		} else {
			// Pre-style all columns for dimmed rows
			rows = append(rows, []string{
				dimStyle.Render(plan.Component.Name),
				dimStyle.Render(plan.Component.VersionFile),
				dimStyle.Render("-"),
				dimStyle.Render("-"),
				dimStyle.Render("missing"),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("COMPONENT", "VERSION FILE", "CURRENT", "PROPOSED", "INCREMENT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			// Content is pre-styled; only pad it.
			return cellStyle
		})

	fmt.Println(t)

	for _, plan := range plans {
		if !plan.Exists {
			displayLogger.WithField("file", plan.Component.VersionFile).Warn("Version file not found")
		}
	}
}

// displayDryRun shows the full plan without touching anything.
func displayDryRun(plans []release.ComponentPlan, newVersion string, push bool) {
	fmt.Println("DRY RUN - No files will be modified")
	fmt.Println()

	displayPlan(plans, newVersion)

	fmt.Println("\nWould also:")
	for _, plan := range plans {
		if plan.Exists {
			fmt.Printf("  - Regenerate lock file in %s/\n", plan.Component.LockDir)
		}
	}
	for _, plan := range plans {
		if plan.Component.RelockAfterAll && plan.Exists {
			fmt.Printf("  - Regenerate lock file in %s/ again to pick up dependency bumps\n", plan.Component.LockDir)
		}
	}
	fmt.Printf("  - Create git commit: '%s'\n", release.CommitMessage(newVersion))
	fmt.Printf("  - Create git tag: '%s'\n", release.TagName(newVersion))
	if push {
		fmt.Println("  - Push the commit and tag to origin")
	}
}

// confirm asks before mutating anything. Non-interactive stdin proceeds
// without a prompt.
func confirm(assumeYes bool) bool {
	if assumeYes {
		fmt.Println("\n[AUTO-CONFIRM] Proceeding with release (--yes flag)")
		return true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return true
	}

	fmt.Print("\nProceed with release? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
