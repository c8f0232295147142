package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	// Background colors
	ColorBgHighlight = lipgloss.Color("#2C313C")

	// Foreground colors
	ColorFgPrimary   = lipgloss.Color("#ABB2BF")
	ColorFgSecondary = lipgloss.Color("#828997")
	ColorFgMuted     = lipgloss.Color("#636B78")
	ColorFgComment   = lipgloss.Color("#5C6370")

	// Syntax colors
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")

	// UI colors
	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	HeaderInfoStyle = lipgloss.NewStyle().
			Foreground(ColorFgSecondary)

	// Control buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Background(ColorBgHighlight).
			Padding(0, 1)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(ColorBgHighlight).
				Background(ColorBlue).
				Bold(true).
				Padding(0, 1)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorFgComment).
				Padding(0, 1)

	// Room card styles
	RoomStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	RoomTitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	SectionLabelStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted)

	// Task item styles
	TaskPendingStyle = lipgloss.NewStyle().
				Foreground(ColorFgPrimary)

	TaskCompleteStyle = lipgloss.NewStyle().
				Foreground(ColorFgComment).
				Strikethrough(true)

	TaskIconPendingStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted)

	TaskIconCompleteStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	TaskSelectedStyle = lipgloss.NewStyle().
				Background(ColorBgHighlight).
				Bold(true)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1).
			PaddingRight(1)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	// Input styles
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
