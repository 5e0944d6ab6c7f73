package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cyberdesk/internal/models"
	"cyberdesk/internal/ui"
)

// maxDescriptorSize bounds how much of a descriptor is read for display
const maxDescriptorSize = 256 * 1024

// Details shows the resolved fields of an entry and its highlighted
// descriptor source in a scrollable viewport
type Details struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	Entry      models.AppEntry
	TotalLines int

	Width  int
	Height int

	lineNumStyle lipgloss.Style
}

// NewDetails creates a new details view
func NewDetails() *Details {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Details{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(ui.Muted).
			Width(4).
			Align(lipgloss.Right),
	}
}

// SetSize updates the viewport dimensions
func (d *Details) SetSize(width, height int) {
	d.Width = width
	d.Height = height

	// fields header (7 lines) and border (2 lines)
	contentHeight := height - 9
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	d.viewport.Width = contentWidth
	d.viewport.Height = contentHeight
}

// Load shows entry. A missing or unreadable descriptor is reported inside
// the view; the fields are still shown.
func (d *Details) Load(entry models.AppEntry) {
	d.Entry = entry

	lines, err := d.readSource(entry.Source)
	if err != nil {
		lines = []string{ui.MutedStyle.Render(err.Error())}
	}

	d.TotalLines = len(lines)
	d.viewport.SetContent(strings.Join(lines, "\n"))
	d.viewport.GotoTop()
}

func (d *Details) readSource(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("built-in entry, no descriptor file")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxDescriptorSize {
		return nil, fmt.Errorf("descriptor too large to preview (%d bytes)", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	highlighted := d.highlighter.Highlight(string(data), path)
	out := make([]string, len(highlighted))
	for i, line := range highlighted {
		out[i] = d.lineNumStyle.Render(fmt.Sprintf("%d", i+1)) + " │ " + line
	}
	return out, nil
}

// Update handles messages for viewport scrolling
func (d *Details) Update(msg tea.Msg) (*Details, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the details panel
func (d *Details) View() string {
	e := d.Entry
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render(e.DisplayGlyph()+"  "+e.DisplayName()) + "\n")
	b.WriteString(ui.RenderField("ID", e.ID) + "\n")
	b.WriteString(ui.RenderField("Exec", e.Exec) + "\n")
	b.WriteString(ui.RenderField("Terminal", fmt.Sprintf("%t", e.Terminal)) + "\n")
	b.WriteString(ui.RenderField("Icon", e.IconPath) + "\n")

	source := e.Source
	if source != "" {
		source = ui.FilePathStyle.Render(source) + ui.MutedStyle.Render("  "+ui.GetFileType(filepath.Base(source)))
	}
	b.WriteString(ui.RenderField("Source", source) + "\n")

	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, d.Width-4))) + "\n")
	b.WriteString(d.viewport.View())

	if d.TotalLines > d.viewport.Height {
		b.WriteString("\n" + ui.MutedStyle.Render(fmt.Sprintf("─── %.0f%% ───", d.viewport.ScrollPercent()*100)))
	}

	return ui.ActivePanelStyle.Width(d.Width).Render(b.String())
}

// ScrollDown scrolls down one line
func (d *Details) ScrollDown() {
	d.viewport.LineDown(1)
}

// ScrollUp scrolls up one line
func (d *Details) ScrollUp() {
	d.viewport.LineUp(1)
}
