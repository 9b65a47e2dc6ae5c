package docgen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for completion indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// headerBoxStyle for the build header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatHeader renders the build header with configuration info
func FormatHeader(w io.Writer, cfg Config) {
	var xmlLine string
	if cfg.WriteXML {
		xmlLine = fmt.Sprintf("\n%s %s", dimStyle.Render("XML:"), cfg.XMLPath)
	}

	content := fmt.Sprintf("%s %s\n%s %s%s",
		dimStyle.Render("Docs:"), titleStyle.Render(cfg.DocsDir),
		dimStyle.Render("Binary:"), cfg.BinPath,
		xmlLine,
	)

	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSummary renders the build summary box
func FormatSummary(w io.Writer, stats *Stats) {
	line := fmt.Sprintf("%s %d  %s %d  %s %s",
		dimStyle.Render("Files:"), stats.Files,
		dimStyle.Render("Objects:"), stats.Objects,
		dimStyle.Render("Written:"), formatBytes(stats.Bytes),
	)

	content := successStyle.Render("Build Complete") + "\n" + line
	fmt.Fprintln(w, boxStyle.Render(content))
}

// formatBytes renders a byte count in a human-readable unit
func formatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KiB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1024*1024))
	}
}
