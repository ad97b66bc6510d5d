package inspect

import "github.com/charmbracelet/lipgloss"

// Styles for the decorated render variant, keyed by text class.
var (
	nilStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boolStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stringStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	functionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	opaqueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	braceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	sentinelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// colorDecorator styles text by class for on-screen display.
func colorDecorator(c class, text string) string {
	switch c {
	case classBool:
		return boolStyle.Render(text)
	case classNumber:
		return numberStyle.Render(text)
	case classString:
		return stringStyle.Render(text)
	case classFunction:
		return functionStyle.Render(text)
	case classOpaque:
		return opaqueStyle.Render(text)
	case classKey:
		return keyStyle.Render(text)
	case classBrace:
		return braceStyle.Render(text)
	case classSentinel:
		return sentinelStyle.Render(text)
	default:
		return nilStyle.Render(text)
	}
}
