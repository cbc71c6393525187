package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Release tool colors and styles
var (
	ColorOrange = lipgloss.Color("208") // 🔥 Firebase brand
	ColorBlue   = lipgloss.Color("63")  // 🔧 Technical detail
	ColorGreen  = lipgloss.Color("42")  // ✅ Success
	ColorYellow = lipgloss.Color("220") // ⚠️  Warning
	ColorRed    = lipgloss.Color("196") // ❌ Error
	ColorGray   = lipgloss.Color("240") // Subtle text

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true).
			PaddingLeft(2)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2)

	// Emoji icons
	IconFire    = "🔥"
	IconSuccess = "✅"
	IconWarning = "⚠️ "
	IconError   = "❌"
	IconTrash   = "🗑️ "
)
