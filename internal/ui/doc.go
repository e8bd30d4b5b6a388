// Package ui holds the color themes shared by the cli and errors packages:
// ANSI codes for plain text output and lipgloss colors for the limits table.
package ui
