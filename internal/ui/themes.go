package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes, one per output role.
type Theme struct {
	Name      string
	Primary   string // headings, current kind marker
	Secondary string // values and labels
	Success   string
	Warning   string // capacity notices
	Error     string
	Info      string
	Bold      string
	Reset     string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TableTheme holds the lipgloss colors used to render tables.
type TableTheme struct {
	Border lipgloss.TerminalColor
	Header lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
	Error  lipgloss.TerminalColor
}

var (
	// DarkTableTheme matches DarkTheme.
	DarkTableTheme = TableTheme{
		Border: lipgloss.Color("39"),
		Header: lipgloss.Color("220"),
		Text:   lipgloss.Color("252"),
		Dim:    lipgloss.Color("245"),
		Error:  lipgloss.Color("196"),
	}

	// LightTableTheme matches LightTheme.
	LightTableTheme = TableTheme{
		Border: lipgloss.Color("27"),
		Header: lipgloss.Color("130"),
		Text:   lipgloss.Color("235"),
		Dim:    lipgloss.Color("240"),
		Error:  lipgloss.Color("124"),
	}

	// NoColorTableTheme renders text with the terminal's default colors.
	NoColorTableTheme = TableTheme{
		Border: lipgloss.NoColor{},
		Header: lipgloss.NoColor{},
		Text:   lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
		Error:  lipgloss.NoColor{},
	}
)

// GetCurrentTableTheme returns the table theme matching the active theme.
func GetCurrentTableTheme() TableTheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	switch currentTheme.Name {
	case "none":
		return NoColorTableTheme
	case "light":
		return LightTableTheme
	default:
		return DarkTableTheme
	}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names select dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme picks the theme for this run. noColor and a set NO_COLOR
// (https://no-color.org/) both disable colors; otherwise FIBS_THEME=light
// selects the light palette.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	if os.Getenv("FIBS_THEME") == "light" {
		currentTheme = LightTheme
		return
	}
	currentTheme = DarkTheme
}
