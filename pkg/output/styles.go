package output

import (
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#0F7B6C", Dark: "#3FC1B0"}
	successColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(headingColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(pathColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// classStyle returns the pterm badge style of an asset class
func classStyle(class types.AssetClass) *pterm.Style {
	switch class {
	case types.Script:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case types.Stylesheet:
		return pterm.NewStyle(pterm.BgBlue, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
