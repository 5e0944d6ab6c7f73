// Package desktop reads freedesktop .desktop descriptors into catalog entries.
package desktop

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"cyberdesk/internal/icons"
	"cyberdesk/internal/models"
)

// SectionName is the group every launchable descriptor must declare.
const SectionName = "Desktop Entry"

// Extension is the file extension of descriptor files.
const Extension = ".desktop"

var (
	// ErrUnreadable is returned for files that cannot be read or parsed.
	ErrUnreadable = errors.New("descriptor unreadable")
	// ErrMissingSection is returned when the [Desktop Entry] group is absent.
	ErrMissingSection = errors.New("descriptor has no [Desktop Entry] section")
	// ErrHidden is returned for entries marked NoDisplay=true.
	ErrHidden = errors.New("descriptor is hidden")
)

// IconResolver maps an icon name to an image path.
type IconResolver interface {
	Resolve(iconName string) (string, bool)
}

// Parser turns descriptor files into entries.
type Parser struct {
	icons  IconResolver
	glyphs *icons.GlyphTable
}

// NewParser creates a Parser. A nil glyph table means built-ins only.
func NewParser(resolver IconResolver, glyphs *icons.GlyphTable) *Parser {
	if glyphs == nil {
		glyphs = icons.NewGlyphTable(nil)
	}
	return &Parser{
		icons:  resolver,
		glyphs: glyphs,
	}
}

// loadOptions read values literally: no interpolation is ever applied
// (only Key.Value is used), '=' is the sole delimiter, and '#' or ';'
// inside a value stays part of the value.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Parse reads one descriptor. Any failure yields an error and no entry;
// callers skip the file and move on.
func (p *Parser) Parse(path string) (entry models.AppEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entry = models.AppEntry{}
			err = fmt.Errorf("%w: %s: %v", ErrUnreadable, path, r)
		}
	}()

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return models.AppEntry{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	section, err := file.GetSection(SectionName)
	if err != nil {
		return models.AppEntry{}, fmt.Errorf("%w: %s", ErrMissingSection, path)
	}

	if strings.EqualFold(value(section, "NoDisplay"), "true") {
		return models.AppEntry{}, fmt.Errorf("%w: %s", ErrHidden, path)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	name := id
	if section.HasKey("Name") {
		name = value(section, "Name")
	}

	iconName := value(section, "Icon")
	exec := NormalizeExec(value(section, "Exec"))

	entry = models.AppEntry{
		ID:       id,
		Name:     name,
		Exec:     exec,
		Terminal: ParseBool(value(section, "Terminal")),
		Source:   path,
	}
	if p.icons != nil {
		if iconPath, ok := p.icons.Resolve(iconName); ok {
			entry.IconPath = iconPath
		}
	}
	entry.Glyph = p.glyphs.Glyph(exec, iconName, name)

	return entry, nil
}

// ParseBool accepts "true" (any case) and "1".
func ParseBool(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, "true") || v == "1"
}

func value(section *ini.Section, key string) string {
	if !section.HasKey(key) {
		return ""
	}
	return strings.TrimSpace(section.Key(key).Value())
}
