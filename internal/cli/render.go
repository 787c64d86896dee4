package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmindtech/endor/internal/dto/resource"
)

const nothingToReport = "Nothing to report"

var (
	primary = lipgloss.Color("63")
	subtle  = lipgloss.Color("240")
	success = lipgloss.Color("42")
	warning = lipgloss.Color("220")
	failure = lipgloss.Color("196")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().Foreground(subtle)

	cellStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right)

	labelStyle = lipgloss.NewStyle().Width(10)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Width(9)
)

var statusColors = map[resource.CheckStatus]lipgloss.Color{
	resource.CheckStatusOK:      success,
	resource.CheckStatusWarning: warning,
	resource.CheckStatusError:   failure,
}

// RenderReport lays out a summary report for the terminal.
func RenderReport(report *resource.SummaryReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Endor Labs findings for %s", report.Name)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("namespace %s, project %s", report.Namespace, report.ProjectUUID)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Vulnerabilities"))
	b.WriteString("\n")
	b.WriteString(renderSeverities(report.Severities))

	for _, group := range report.Groups {
		b.WriteString(sectionStyle.Render(group.Title))
		b.WriteString("\n")
		for _, check := range group.Checks {
			b.WriteString(renderCheck(check))
		}
	}

	return b.String()
}

func renderSeverities(rows []resource.SeverityRow) string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(""),
		cellStyle.Render("Total"),
		cellStyle.Render("Reachable"),
	))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(row.Label),
			cellStyle.Render(fmt.Sprint(row.Total)),
			cellStyle.Render(fmt.Sprint(row.Reachable)),
		))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCheck(check resource.CategoryCheck) string {
	badge := badgeStyle.Foreground(statusColors[check.Status]).Render(string(check.Status))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badge, fmt.Sprintf("%s (%d)", check.Title, check.Count)))
	b.WriteString("\n")

	if check.Count == 0 {
		b.WriteString(mutedStyle.Render("  " + nothingToReport))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  " + check.Explanation)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  " + check.Link))
	b.WriteString("\n")

	return b.String()
}
