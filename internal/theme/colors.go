package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Shortcut state colors
const (
	ColorCustom    Color = "214" // Orange - binding differs from default
	ColorDefault   Color = "8"   // Gray - binding is the default
	ColorRecording Color = "1"   // Red - capture in progress
	ColorSaved     Color = "2"   // Green - binding saved
)

// Listener colors
const (
	ColorListenerRunning   Color = "2" // Green
	ColorListenerSuspended Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Dark gray - selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorKeyCap    Color = "226" // Yellow - key tokens inside a binding
)
