package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan = lipgloss.Color("36")  // Teal - values
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorGray = lipgloss.Color("245") // Gray - headers
	colorDim  = lipgloss.Color("240") // Dim gray - labels, borders
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for labels and muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleError for the error line printed before exiting.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)
