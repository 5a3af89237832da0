// Package controller renders domain results for the fourd CLI.
package controller

import (
	m "github.com/e-marchand/fourd/internal/model"
)

// ReportFormat selects how a project report is rendered.
type ReportFormat string

// Supported report formats.
const (
	FormatJSON  ReportFormat = "json"
	FormatTable ReportFormat = "table"
)

// UI is the rendering seam between cobra commands and domain results.
// Implementations write to the command's configured output.
type UI interface {
	// ShowReport renders a full project report.
	ShowReport(report *m.ProjectReport, format ReportFormat) error
	// ShowCompactReport renders the compact projection.
	ShowCompactReport(report m.CompactReport, format ReportFormat) error
	// ShowLines prints plain message lines.
	ShowLines(lines ...string)
	// ShowJSON renders any value as indented JSON.
	ShowJSON(value interface{}) error
}
