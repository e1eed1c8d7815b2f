package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelected).
			Bold(true)

	SlotHelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Binding styles
var (
	CustomBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorCustom)

	DefaultBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorDefault)

	KeyCapStyle = lipgloss.NewStyle().
			Foreground(ColorKeyCap).
			Bold(true)

	KeySeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Capture dialog styles
var (
	CaptureBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorRecording).
			Padding(1, 2)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	RecordingStyle = lipgloss.NewStyle().
			Foreground(ColorRecording).
			Bold(true)

	SavedStyle = lipgloss.NewStyle().
			Foreground(ColorSaved)
)

// Listener status styles
var (
	ListenerRunningStyle = lipgloss.NewStyle().
				Foreground(ColorListenerRunning)

	ListenerSuspendedStyle = lipgloss.NewStyle().
				Foreground(ColorListenerSuspended).
				Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(18)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
