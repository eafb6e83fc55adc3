package main

import "github.com/charmbracelet/lipgloss"

var (
	colorDark   = lipgloss.Color("#101F38")
	colorLight  = lipgloss.Color("#f2f2f2")
	colorAccent = lipgloss.Color("#8BC34A")
	colorMuted  = lipgloss.Color("#2a3850")
	colorError  = lipgloss.Color("#e53935")

	toolbarStyle    = lipgloss.NewStyle().Foreground(colorLight).Background(colorMuted)
	activeToolStyle = lipgloss.NewStyle().Foreground(colorDark).Background(colorAccent).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(colorLight)
	errorStyle      = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	successStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	titleStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
