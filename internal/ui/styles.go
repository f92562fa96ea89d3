package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vietdv277/chimectl/internal/operation"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder   = "240"
	ColorHeader   = "252"
	ColorID       = "214"
	ColorName     = "81"
	ColorValue    = "252"
	ColorService  = "245"
	ColorOK       = "82"
	ColorWarn     = "214"
	ColorDanger   = "203"
	ColorMuted    = "240"
	ColorHint     = "245"
	ColorRequired = "214"
)

// Shared styles
var (
	BorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	IDStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorID))
	NameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorValue))
	ServiceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorService))
	OKStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOK))
	WarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn))
	DangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
	RequiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRequired))
)

// ImpactStyle returns the style an impact level is shown in
func ImpactStyle(i operation.Impact) lipgloss.Style {
	switch i {
	case operation.ImpactHigh:
		return DangerStyle
	case operation.ImpactMedium:
		return WarnStyle
	case operation.ImpactLow:
		return ValueStyle
	default:
		return MutedStyle
	}
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

func formatOptional(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
