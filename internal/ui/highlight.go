package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter renders descriptor sources with terminal colors
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// Highlight tokenises the whole source at once and returns one rendered
// string per line, so multi-line constructs keep their state.
func (h *Highlighter) Highlight(source, filename string) []string {
	source = strings.TrimRight(source, "\n")
	lexer := getLexerForFile(filename)
	if lexer == nil {
		return strings.Split(source, "\n")
	}

	iterator, err := lexer.Tokenise(nil, source+"\n")
	if err != nil {
		return strings.Split(source, "\n")
	}

	var lines []string
	for _, tokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		var b strings.Builder
		for _, token := range tokens {
			b.WriteString(h.render(token))
		}
		lines = append(lines, strings.TrimRight(b.String(), "\n"))
	}
	return lines
}

func (h *Highlighter) render(token chroma.Token) string {
	style := h.style.Get(token.Type)
	if !style.Colour.IsSet() {
		return token.Value
	}

	styled := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Colour.String()))
	if style.Bold == chroma.Yes {
		styled = styled.Bold(true)
	}
	if style.Italic == chroma.Yes {
		styled = styled.Italic(true)
	}
	// lipgloss pads multi-line renders; newlines are handled by the caller
	if strings.Contains(token.Value, "\n") {
		parts := strings.Split(token.Value, "\n")
		for i, p := range parts {
			if p != "" {
				parts[i] = styled.Render(p)
			}
		}
		return strings.Join(parts, "\n")
	}
	return styled.Render(token.Value)
}

// getLexerForFile returns the INI lexer for descriptor files and nil for
// anything else, which is shown as plain text
func getLexerForFile(filename string) chroma.Lexer {
	if strings.EqualFold(filepath.Ext(filename), ".desktop") {
		return lexers.Get("ini")
	}
	return nil
}

// GetFileType returns a human-readable file type for display
func GetFileType(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".desktop") {
		return "Desktop Entry"
	}
	return "Text"
}
