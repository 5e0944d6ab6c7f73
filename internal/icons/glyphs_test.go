package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cyberdesk/internal/models"
)

func TestGlyph_KeywordFromExec(t *testing.T) {
	table := NewGlyphTable(nil)

	assert.Equal(t, "\uf269", table.Glyph("firefox --new-window", "", "Web"))
}

func TestGlyph_KeywordFromIconName(t *testing.T) {
	table := NewGlyphTable(nil)

	assert.Equal(t, "\uf1b6", table.Glyph("/opt/launcher", "Steam", "Games"))
}

func TestGlyph_FirstKeywordInTableOrderWins(t *testing.T) {
	table := NewGlyphTable(nil)

	// "code" precedes "vim" in the table even though vim appears first in the text.
	assert.Equal(t, "\ue70c", table.Glyph("vim-code", "", "X"))
}

func TestGlyph_FirstLetterFallback(t *testing.T) {
	table := NewGlyphTable(nil)

	assert.Equal(t, "E", table.Glyph("editor", "editor-icon", "editor"))
	assert.Equal(t, "É", table.Glyph("xyz", "", "éclair"))
}

func TestGlyph_PlaceholderFallback(t *testing.T) {
	table := NewGlyphTable(nil)

	assert.Equal(t, models.PlaceholderGlyph, table.Glyph("xyz", "", ""))
}

func TestGlyph_CaseInsensitive(t *testing.T) {
	table := NewGlyphTable(nil)

	assert.Equal(t, "\uf1bc", table.Glyph("SPOTIFY", "", "Music"))
}

func TestNewGlyphTable_OverridesComeFirst(t *testing.T) {
	table := NewGlyphTable(map[string]string{"firefox": "F"})

	assert.Equal(t, "F", table.Glyph("firefox", "", "Firefox"))
	assert.Equal(t, "F", table.Glyph("/usr/lib/firefox/firefox", "firefox", "Browser"))
}

func TestNewGlyphTable_OverrideOrderIsDeterministic(t *testing.T) {
	overrides := map[string]string{
		"fox":     "1",
		"firefox": "2",
		"abc":     "3",
		"":        "skipped",
		"empty":   "",
	}

	for i := 0; i < 20; i++ {
		table := NewGlyphTable(overrides)
		// longest keyword first, then alphabetical
		assert.Equal(t, "2", table.Glyph("firefox", "", "x"))
		assert.Equal(t, "3", table.Glyph("abcfox", "", "x"))
		assert.Equal(t, "1", table.Glyph("fox", "", "x"))
		assert.Equal(t, "X", table.Glyph("empty", "", "x"))
	}
}

func TestLookup_NoMatch(t *testing.T) {
	table := NewGlyphTable(nil)

	_, ok := table.Lookup("zzzz")
	assert.False(t, ok)
}
