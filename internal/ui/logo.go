package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ASCII Art Logo
const asciiLogo = `
  ____  ____   ___  _____ ____  _____ __  __  ___
 |  _ \|  _ \ / _ \|  ___|  _ \| ____|  \/  |/ _ \
 | |_) | |_) | | | | |_  | | | |  _| | |\/| | | | |
 |  __/|  _ <| |_| |  _| | |_| | |___| |  | | |_| |
 |_|   |_| \_\\___/|_|   |____/|_____|_|  |_|\___/
`

// GenerateLogo returns the gradient styled logo. On light terminal
// backgrounds the gradient starts darker so it stays readable.
func GenerateLogo() string {
	gradient := []string{"#00BFFF", "#1E90FF", "#4169E1", "#8A2BE2", "#FF00FF"}
	if !termenv.HasDarkBackground() {
		gradient = []string{"#00008B", "#191970", "#4B0082", "#6A0DAD", "#8B008B"}
	}

	lines := strings.Split(strings.Trim(asciiLogo, "\n"), "\n")
	var coloredLines []string
	for i, line := range lines {
		color := "#FFF"
		if i < len(gradient) {
			color = gradient[i]
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		coloredLines = append(coloredLines, style.Render(line))
	}
	return strings.Join(coloredLines, "\n")
}

// LogoContainerStyle container
var LogoContainerStyle = lipgloss.NewStyle().
	MarginLeft(2).
	MarginBottom(1).
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62"))
