package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan, primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold, level and bonus
	colorSuccess     = lipgloss.Color("#00E676") // Green, completed
	colorDanger      = lipgloss.Color("#FF5252") // Red, errors
	colorMuted       = lipgloss.Color("#636363")
	colorMutedLight  = lipgloss.Color("#8C8C8C")
	colorWhite       = lipgloss.Color("#EEEEEE")
	colorBrightWhite = lipgloss.Color("#FFFFFF")
	colorSurface     = lipgloss.Color("#1E1E2E")
	colorSurfaceDim  = lipgloss.Color("#181825")
	colorMagenta     = lipgloss.Color("#C678DD") // Level up
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status bar styles.
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

	styleStatusScore = lipgloss.NewStyle().
				Foreground(colorAccent)
)

// Goal row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowDone = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Message line styles.
var (
	styleMsgInfo = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleMsgLevel = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	styleMsgError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleMsgDim = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
