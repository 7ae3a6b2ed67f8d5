package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent        = lipgloss.Color("#FFD700") // Gold — attention
	colorSuccess       = lipgloss.Color("#00E676") // Green — known interactions
	colorDanger        = lipgloss.Color("#FF5252") // Red — errors
	colorMuted         = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite   = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface — footer bg
	colorBlue          = lipgloss.Color("#5B8DEF") // Blue — compartments
)

// Status bar styles — visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)
)

// Table content styles.
var (
	styleTableHeader = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleGroupID = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleEntity = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleCompartment = lipgloss.NewStyle().
				Foreground(colorBlue)

	styleEmptyHint = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMuted).
			Padding(0, 1)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
