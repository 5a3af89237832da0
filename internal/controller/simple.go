package controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/e-marchand/fourd/internal/model"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// SimpleUI renders to the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ShowReport renders the full report as JSON or as summary tables.
func (s *SimpleUI) ShowReport(report *m.ProjectReport, format ReportFormat) error {
	if format != FormatTable {
		return s.ShowJSON(report)
	}

	s.printf("%s\n", headingStyle.Render(report.ProjectRoot))
	s.printf("%s", renderSummaryTable(report.Summary))

	if len(report.Classes) > 0 {
		s.printf("\n%s\n", headingStyle.Render("Classes"))
		s.printf("%s", renderClassTable(report.Classes))
	}

	if len(report.Forms) > 0 {
		s.printf("\n%s\n", headingStyle.Render("Forms"))
		s.printf("%s", renderFormTable(report.Forms))
	}

	return nil
}

// ShowCompactReport renders the compact projection.
func (s *SimpleUI) ShowCompactReport(report m.CompactReport, format ReportFormat) error {
	if format != FormatTable {
		return s.ShowJSON(report)
	}

	s.printf("%s\n", headingStyle.Render(report.ProjectRoot))
	s.printf("%s", renderSummaryTable(report.Summary))

	return nil
}

// ShowLines prints plain message lines.
func (s *SimpleUI) ShowLines(lines ...string) {
	for _, line := range lines {
		s.printf("%s\n", line)
	}
}

// ShowJSON renders any value as indented JSON.
func (s *SimpleUI) ShowJSON(value interface{}) error {
	rendered, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	s.printf("%s\n", rendered)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(summary m.ReportSummary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Category", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Methods", fmt.Sprintf("%d", summary.MethodsCount)})
	table.Append([]string{"Classes", fmt.Sprintf("%d", summary.ClassesCount)})
	table.Append([]string{"Forms", fmt.Sprintf("%d", summary.FormsCount)})
	table.Append([]string{"Database methods", fmt.Sprintf("%d", len(summary.DatabaseMethods))})
	table.Append([]string{"Dependencies", fmt.Sprintf("%d", len(summary.Dependencies.Dependencies))})
	table.SetFooter([]string{"Code lines", fmt.Sprintf("%d", summary.TotalCodeLines)})

	table.Render()

	return buf.String()
}

func renderClassTable(classes []m.ClassSymbol) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Class", "Extends", "Properties", "Functions", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, class := range classes {
		table.Append([]string{
			class.Name,
			class.Extends,
			fmt.Sprintf("%d", len(class.Properties)),
			fmt.Sprintf("%d", len(class.Functions)),
			fmt.Sprintf("%d", class.Lines),
		})
	}

	table.Render()

	return buf.String()
}

func renderFormTable(forms []m.FormDescriptor) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Form", "Pages", "Methods"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, form := range forms {
		pages := "-"
		if form.Pages != nil {
			pages = fmt.Sprintf("%d", *form.Pages)
		}

		table.Append([]string{form.Name, pages, fmt.Sprintf("%d", len(form.Methods))})
	}

	table.Render()

	return buf.String()
}
