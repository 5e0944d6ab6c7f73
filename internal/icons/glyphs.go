package icons

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"cyberdesk/internal/models"
)

// Glyph maps a keyword found in a command or icon name to a symbol.
type Glyph struct {
	Keyword string
	Symbol  string
}

// builtinGlyphs is matched in order; earlier keywords win.
var builtinGlyphs = []Glyph{
	{"firefox", "\uf269"},
	{"chrome", "\uf268"},
	{"brave", "\uf7e1"},
	{"code", "\ue70c"},
	{"neovim", "\ue62b"},
	{"vim", "\ue62b"},
	{"terminal", "\uf120"},
	{"kitty", "🐱"},
	{"alacritty", "\uf120"},
	{"urxvt", "\uf120"},
	{"files", "\uf07b"},
	{"folder", "\uf07b"},
	{"nautilus", "\uf07b"},
	{"thunar", "\uf07b"},
	{"dolphin", "\uf07b"},
	{"settings", "\uf013"},
	{"control", "🎚️"},
	{"qt", "\uf375"},
	{"rofi", "\uf002"},
	{"run", "\uf04b"},
	{"vlc", "\uf03d"},
	{"mpv", "\uf03d"},
	{"obs", "\uf03d"},
	{"monitor", "\uf108"},
	{"btop", "\uf080"},
	{"discord", "\ufb6e"},
	{"spotify", "\uf1bc"},
	{"steam", "\uf1b6"},
	{"waypaper", "\uf03e"},
	{"wallpaper", "\uf03e"},
	{"nitrogen", "\uf03e"},
	{"xournal", "\uf1fc"},
	{"draw", "\uf1fc"},
	{"paint", "\uf1fc"},
	{"gimp", "\uf1fc"},
	{"uuctl", "\uf287"},
	{"usb", "\uf287"},
}

// GlyphTable is an ordered keyword -> glyph list.
type GlyphTable struct {
	entries []Glyph
}

// NewGlyphTable builds a table with user overrides ahead of the built-ins.
// Overrides are ordered longest keyword first, then alphabetically, so the
// most specific keyword wins and the order never depends on map iteration.
func NewGlyphTable(overrides map[string]string) *GlyphTable {
	user := make([]Glyph, 0, len(overrides))
	for k, v := range overrides {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || v == "" {
			continue
		}
		user = append(user, Glyph{Keyword: k, Symbol: v})
	}
	sort.Slice(user, func(i, j int) bool {
		if len(user[i].Keyword) != len(user[j].Keyword) {
			return len(user[i].Keyword) > len(user[j].Keyword)
		}
		return user[i].Keyword < user[j].Keyword
	})

	return &GlyphTable{entries: append(user, builtinGlyphs...)}
}

// Lookup returns the glyph of the first keyword contained in haystack.
// The haystack is expected to be lower-case already.
func (t *GlyphTable) Lookup(haystack string) (string, bool) {
	for _, g := range t.entries {
		if strings.Contains(haystack, g.Keyword) {
			return g.Symbol, true
		}
	}
	return "", false
}

// Glyph picks the fallback symbol for an entry: a keyword hit in the command
// or icon name, else the upper-cased first letter of the name, else "?".
func (t *GlyphTable) Glyph(exec, iconName, name string) string {
	if g, ok := t.Lookup(strings.ToLower(exec + " " + iconName)); ok {
		return g
	}

	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return models.PlaceholderGlyph
	}
	return string(unicode.ToUpper(r))
}
