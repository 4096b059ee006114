package cli

import "github.com/charmbracelet/lipgloss"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// render applies a style unless color output is disabled.
func (a *App) render(style lipgloss.Style, s string) string {
	if a.Config != nil && !a.Config.Output.Color {
		return s
	}
	return style.Render(s)
}
