package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	Long: `List projects, optionally filtered and sorted.

Examples:
  pm list
  pm list --status "In Progress" --priority High
  pm list --search website --hide-completed
  pm list --sort desc`,
	RunE: runList,
}

var (
	listStatus        string
	listPriority      string
	listSearch        string
	listHideCompleted bool
	listSort          string
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search name, category and description")
	listCmd.Flags().BoolVar(&listHideCompleted, "hide-completed", false, "Hide projects at 100% progress")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by progress (asc or desc)")
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

func runList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if listSort != "" && listSort != view.SortAsc && listSort != view.SortDesc {
		return fmt.Errorf("invalid sort direction: %s (use asc or desc)", listSort)
	}

	projects := view.Apply(app.Store.Projects(), view.Filter{
		Status:        listStatus,
		Priority:      listPriority,
		Query:         listSearch,
		HideCompleted: listHideCompleted,
		SortProgress:  listSort,
	})

	if len(projects) == 0 {
		fmt.Println("No projects found. Add one with: pm add \"Your project\"")
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("📋 %d projects", len(projects))))
	fmt.Println(strings.Repeat("─", 78))
	for _, p := range projects {
		printProject(p)
	}
	fmt.Println()
	return nil
}

func printProject(p model.Project) {
	shortID := p.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	name := p.Name
	if len(name) > 28 {
		name = name[:25] + "..."
	}

	due := ""
	now := time.Now()
	if left, ok := p.DaysLeft(now); ok {
		switch {
		case p.IsOverdue(now):
			due = overdueStyle.Render(fmt.Sprintf("overdue %dd", -left))
		case left == 0:
			due = "due today"
		case left == 1:
			due = "due tomorrow"
		default:
			due = fmt.Sprintf("%dd left", left)
		}
	}

	fmt.Printf("  %-8s  %-28s  %-12s  %-8s  %3d%%  %s\n",
		shortID, name, p.Status, p.Priority, p.Progress(), due)

	if p.Category != "" {
		fmt.Printf("  %s\n", dimStyle.Render("          "+p.Category))
	}
}
