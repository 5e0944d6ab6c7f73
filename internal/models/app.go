package models

// AppEntry represents a launchable application resolved from a descriptor file
type AppEntry struct {
	ID       string // Descriptor filename stem
	Name     string // Display name
	Exec     string // Normalized command line, field codes stripped
	Glyph    string // Fallback symbol, always set
	IconPath string // Resolved image path, empty if none was found
	Terminal bool   // Must run inside a terminal emulator
	Source   string // Descriptor file the entry was built from
}

// DedupKey identifies entries that launch the same thing under the same name
type DedupKey struct {
	Name string
	Exec string
}

// TerminalGlyph is used for the synthesized shell entry
const TerminalGlyph = "\uf120"

// PlaceholderGlyph is used when nothing better is available
const PlaceholderGlyph = "?"

// FallbackEntry returns the entry shown when no descriptor produced anything
func FallbackEntry() AppEntry {
	return AppEntry{
		ID:       "1",
		Name:     "Term",
		Exec:     "bash",
		Glyph:    TerminalGlyph,
		Terminal: true,
	}
}

// Key returns the deduplication key of the entry
func (e AppEntry) Key() DedupKey {
	return DedupKey{Name: e.Name, Exec: e.Exec}
}

// HasIcon reports whether an image file was resolved
func (e AppEntry) HasIcon() bool {
	return e.IconPath != ""
}

// DisplayName returns the name to show, never empty
func (e AppEntry) DisplayName() string {
	if e.Name == "" {
		return "Unknown"
	}
	return e.Name
}

// DisplayGlyph returns the glyph to show, never empty
func (e AppEntry) DisplayGlyph() string {
	if e.Glyph == "" {
		return PlaceholderGlyph
	}
	return e.Glyph
}
