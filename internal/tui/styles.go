package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sky-xo/treediff/internal/config"
	"github.com/sky-xo/treediff/internal/difftree"
)

var (
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))  // cyan
	cursorBgStyle  = lipgloss.NewStyle().Background(lipgloss.Color("8"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	searchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	focusedBorderColor   = lipgloss.Color("6") // Cyan
	unfocusedBorderColor = lipgloss.Color("8") // Dim
)

// applyColors installs config overrides into the package styles.
func applyColors(c config.Colors) {
	if c.Added != "" {
		addedStyle = addedStyle.Foreground(lipgloss.Color(c.Added))
	}
	if c.Removed != "" {
		removedStyle = removedStyle.Foreground(lipgloss.Color(c.Removed))
	}
	if c.Changed != "" {
		changedStyle = changedStyle.Foreground(lipgloss.Color(c.Changed))
	}
	if c.Muted != "" {
		mutedStyle = mutedStyle.Foreground(lipgloss.Color(c.Muted))
		statusBarStyle = statusBarStyle.Foreground(lipgloss.Color(c.Muted))
	}
}

// diffStyle maps a diff classification to its row style.
func diffStyle(t difftree.DiffType) lipgloss.Style {
	switch t {
	case difftree.DiffAdded:
		return addedStyle
	case difftree.DiffRemoved:
		return removedStyle
	case difftree.DiffChanged:
		return changedStyle
	default:
		return lipgloss.NewStyle()
	}
}
