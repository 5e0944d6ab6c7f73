package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"cyberdesk/internal/ui"
)

// HelpOverlay renders every keybinding in a centered dialog
type HelpOverlay struct {
	help help.Model
	keys ui.KeyMap
}

// NewHelpOverlay creates the overlay for keys
func NewHelpOverlay(keys ui.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = ui.HelpKeyStyle
	h.Styles.FullDesc = ui.HelpDescStyle
	h.Styles.FullSeparator = ui.DividerStyle
	return &HelpOverlay{help: h, keys: keys}
}

// View renders the overlay centered in width x height
func (o *HelpOverlay) View(width, height int) string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Commands") + "\n\n")
	b.WriteString(o.help.View(o.keys) + "\n\n")
	b.WriteString(ui.RenderHelpItem("esc/k", "close"))

	dialog := ui.DialogStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
