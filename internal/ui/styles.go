package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Background = lipgloss.Color("#1F2937") // Dark gray
	Foreground = lipgloss.Color("#F9FAFB") // Light
	Border     = lipgloss.Color("#374151") // Border gray
	Highlight  = lipgloss.Color("#8B5CF6") // Light purple
	Selected   = lipgloss.Color("#4F46E5") // Indigo
)

// Styles
var (
	// App container
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Foreground)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	// Cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Align(lipgloss.Center)

	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(Highlight).
				Foreground(Foreground).
				Bold(true).
				Align(lipgloss.Center)

	GlyphStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	CardNameStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	TerminalBadgeStyle = lipgloss.NewStyle().
				Foreground(Warning)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	StatusTextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Help bar
	HelpBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Details view
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Muted text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Divider
	DividerStyle = lipgloss.NewStyle().
			Foreground(Border)

	// Notification/Toast styles
	SuccessNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#10B981")).
				Background(lipgloss.Color("#064E3B")).
				Padding(0, 1).
				Bold(true)

	ErrorNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FCA5A5")).
				Background(lipgloss.Color("#7F1D1D")).
				Padding(0, 1).
				Bold(true)

	WarningNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FCD34D")).
				Background(lipgloss.Color("#78350F")).
				Padding(0, 1).
				Bold(true)

	InfoNotifyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93C5FD")).
			Background(lipgloss.Color("#1E3A5F")).
			Padding(0, 1).
			Bold(true)

	// Dialog box style
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
)

// NotificationType selects the style of a notification
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

// RenderHelpItem renders a help key-description pair
func RenderHelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

// RenderField renders a "label: value" line for the details view
func RenderField(label, value string) string {
	if value == "" {
		value = MutedStyle.Render("(none)")
	}
	return FieldLabelStyle.Render(label+":") + " " + value
}

// RenderNotification renders a styled notification message
func RenderNotification(msgType NotificationType, message string) string {
	var icon string
	var style lipgloss.Style

	switch msgType {
	case NotifySuccess:
		icon = "✓"
		style = SuccessNotifyStyle
	case NotifyError:
		icon = "✗"
		style = ErrorNotifyStyle
	case NotifyWarning:
		icon = "⚠"
		style = WarningNotifyStyle
	case NotifyInfo:
		icon = "ℹ"
		style = InfoNotifyStyle
	default:
		icon = "•"
		style = MutedStyle
	}

	return style.Render(icon + " " + message)
}
