package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cyberdesk/internal/models"
	"cyberdesk/internal/ui"
)

const (
	// CardWidth is the horizontal space one card takes, gap included
	CardWidth = 24
	// CardHeight is the vertical space one card takes, border included
	CardHeight = 6

	cardInnerWidth = CardWidth - 4 // border and gap
	gridMargin     = 4
)

// AppGrid is a paged grid of app cards
type AppGrid struct {
	Entries []models.AppEntry
	Offset  int // Index of the first entry on the page
	Cursor  int // Absolute index of the selected entry
	Cols    int
	Rows    int
	Width   int
	Height  int
}

// NewAppGrid creates a new grid with a single card
func NewAppGrid(entries []models.AppEntry) *AppGrid {
	g := &AppGrid{Cols: 1, Rows: 1}
	g.SetEntries(entries)
	return g
}

// SetEntries replaces the catalog and clamps the page and cursor
func (g *AppGrid) SetEntries(entries []models.AppEntry) {
	g.Entries = entries
	g.clamp()
}

// SetSize recomputes columns and rows for the available area
func (g *AppGrid) SetSize(width, height int) {
	g.Width = width
	g.Height = height
	g.Cols = max(1, (width-gridMargin)/CardWidth)
	g.Rows = max(1, height/CardHeight)
	g.clamp()
}

// PerPage returns the number of cards on a page
func (g *AppGrid) PerPage() int {
	return max(1, g.Cols*g.Rows)
}

// Page returns the 1-based page number of the current offset
func (g *AppGrid) Page() int {
	// the last page is end-aligned, so its offset is not a multiple of
	// the page size; rounding up still numbers it PageCount
	return (g.Offset+g.PerPage()-1)/g.PerPage() + 1
}

// PageCount returns the number of pages needed for all entries
func (g *AppGrid) PageCount() int {
	return max(1, (len(g.Entries)+g.PerPage()-1)/g.PerPage())
}

// NextPage advances by one page. The last page is aligned to the end of
// the catalog, so it may overlap the previous one.
func (g *AppGrid) NextPage() bool {
	next := min(len(g.Entries)-g.PerPage(), g.Offset+g.PerPage())
	next = max(0, next)
	if next == g.Offset {
		return false
	}
	g.Offset = next
	g.Cursor = next
	return true
}

// PrevPage goes back one page, never before the first entry
func (g *AppGrid) PrevPage() bool {
	prev := max(0, g.Offset-g.PerPage())
	if prev == g.Offset {
		return false
	}
	g.Offset = prev
	g.Cursor = prev
	return true
}

// MoveRight selects the next card, turning the page after the last one
func (g *AppGrid) MoveRight() {
	if g.Cursor < g.pageEnd()-1 {
		g.Cursor++
		return
	}
	g.NextPage()
}

// MoveLeft selects the previous card, turning back before the first one
func (g *AppGrid) MoveLeft() {
	if g.Cursor > g.Offset {
		g.Cursor--
		return
	}
	if g.PrevPage() {
		g.Cursor = g.pageEnd() - 1
	}
}

// MoveDown selects the card below, if the page has one
func (g *AppGrid) MoveDown() {
	if g.Cursor+g.Cols < g.pageEnd() {
		g.Cursor += g.Cols
	}
}

// MoveUp selects the card above, if the page has one
func (g *AppGrid) MoveUp() {
	if g.Cursor-g.Cols >= g.Offset {
		g.Cursor -= g.Cols
	}
}

// GoToFirst shows the first page
func (g *AppGrid) GoToFirst() {
	g.Offset = 0
	g.Cursor = 0
}

// GoToLast shows the last page with the last entry selected
func (g *AppGrid) GoToLast() {
	if len(g.Entries) == 0 {
		return
	}
	g.Offset = max(0, len(g.Entries)-g.PerPage())
	g.Cursor = len(g.Entries) - 1
}

// Current returns the selected entry
func (g *AppGrid) Current() (models.AppEntry, bool) {
	if g.Cursor >= 0 && g.Cursor < len(g.Entries) {
		return g.Entries[g.Cursor], true
	}
	return models.AppEntry{}, false
}

// Visible returns the entries on the current page
func (g *AppGrid) Visible() []models.AppEntry {
	return g.Entries[g.Offset:g.pageEnd()]
}

// Status renders the status line
func (g *AppGrid) Status() string {
	return fmt.Sprintf("Apps: %d | Page %d/%d | [k] help", len(g.Entries), g.Page(), g.PageCount())
}

// View renders the current page
func (g *AppGrid) View() string {
	visible := g.Visible()
	if len(visible) == 0 {
		return ui.MutedStyle.Render("No apps found")
	}

	var rows []string
	for start := 0; start < len(visible); start += g.Cols {
		end := min(start+g.Cols, len(visible))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(visible[i], g.Offset+i == g.Cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one entry as a bordered card
func (g *AppGrid) renderCard(e models.AppEntry, selected bool) string {
	glyph := ui.GlyphStyle.Render(truncate(e.DisplayGlyph(), cardInnerWidth))
	name := ui.CardNameStyle.Render(truncate(e.DisplayName(), cardInnerWidth))

	var badges []string
	if e.Terminal {
		badges = append(badges, ui.TerminalBadgeStyle.Render("term"))
	}
	if e.HasIcon() {
		badges = append(badges, ui.MutedStyle.Render("icon"))
	}

	content := strings.Join([]string{glyph, "", name, strings.Join(badges, " ")}, "\n")

	style := ui.CardStyle
	if selected {
		style = ui.SelectedCardStyle
	}
	return style.Width(cardInnerWidth).MarginRight(CardWidth - cardInnerWidth - 2).Render(content)
}

func (g *AppGrid) pageEnd() int {
	return min(len(g.Entries), g.Offset+g.PerPage())
}

// clamp keeps the offset and cursor inside the catalog
func (g *AppGrid) clamp() {
	if g.Cols < 1 {
		g.Cols = 1
	}
	if g.Rows < 1 {
		g.Rows = 1
	}
	if g.Offset > len(g.Entries)-g.PerPage() {
		g.Offset = len(g.Entries) - g.PerPage()
	}
	if g.Offset < 0 {
		g.Offset = 0
	}
	if g.Cursor < g.Offset {
		g.Cursor = g.Offset
	}
	if end := g.pageEnd(); g.Cursor >= end {
		g.Cursor = max(g.Offset, end-1)
	}
}

// truncate shortens s to width terminal cells
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
