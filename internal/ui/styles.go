package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA, configurable via ui.accent): Highlights,
//   addresses, interactive elements
// - Muted (gray): Secondary info, positions, hints
// - No colored success/error/warning - use unicode symbols only

// DefaultAccentColor is the accent used when config.toml sets none.
const DefaultAccentColor = "#A78BFA"

var (
	// Accent style for node addresses, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccentColor))

	// Muted style for secondary info, hints, positions
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccentColor)).Bold(true)

	// accentColor is the active accent; empty when the accent is disabled.
	accentColor = DefaultAccentColor
)

// ConfigureTheme applies the ui.accent setting from config.toml.
// An empty value keeps the default; "none", "off", or "default" disable
// the accent entirely; anything else must be an ANSI 256 code or a hex
// color, and is ignored when invalid.
func ConfigureTheme(accent string) {
	normalized := strings.ToLower(strings.TrimSpace(accent))
	switch normalized {
	case "":
		return
	case "none", "off", "default":
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}

	color, ok := normalizeAccentColor(accent)
	if !ok {
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, and false when the accent
// is disabled.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates an accent value and returns its
// canonical form: a bare ANSI 256 code ("39") or a lowercase 6-digit hex
// color ("#aabbcc"). Disabling keywords and invalid values return false.
func normalizeAccentColor(value string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	switch trimmed {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(trimmed, "#") {
		hex := trimmed[1:]
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdef", r) {
				return "", false
			}
		}
		switch len(hex) {
		case 3:
			var b strings.Builder
			b.WriteByte('#')
			for i := 0; i < 3; i++ {
				b.WriteByte(hex[i])
				b.WriteByte(hex[i])
			}
			return b.String(), true
		case 6:
			return "#" + hex, true
		default:
			return "", false
		}
	}

	code, err := strconv.Atoi(trimmed)
	if err != nil || code < 0 || code > 255 {
		return "", false
	}
	return strconv.Itoa(code), true
}
