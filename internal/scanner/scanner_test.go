package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"cyberdesk/internal/desktop"
	"cyberdesk/internal/icons"
	"cyberdesk/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func descriptor(name, exec string) string {
	return "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=" + exec + "\n"
}

func newScanner(dirs ...string) *Scanner {
	return New(desktop.NewParser(icons.NewResolver(nil), nil), dirs)
}

func names(entries []models.AppEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestNew(t *testing.T) {
	dirs := []string{"/a", "/b"}
	s := newScanner(dirs...)
	require.NotNil(t, s)
	assert.GreaterOrEqual(t, s.workers, 1)
	assert.LessOrEqual(t, s.workers, 16)

	dirs[0] = "/changed"
	assert.Equal(t, []string{"/a", "/b"}, s.dirs, "scanner should keep its own copy")
}

func TestScan_EditorDescriptor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "editor.desktop", `[Desktop Entry]
Type=Application
Name=Editor
Exec=editor %F
Icon=editor-icon
Terminal=false
`)

	c := newScanner(dir).Scan()

	want := []models.AppEntry{{
		ID:       "editor",
		Name:     "Editor",
		Exec:     "editor",
		Glyph:    "E",
		IconPath: "",
		Terminal: false,
		Source:   filepath.Join(dir, "editor.desktop"),
	}}
	assert.Equal(t, want, c.Entries)
	assert.False(t, c.Fallback)
	assert.NoError(t, c.Err)
}

func TestScan_FallbackWhenNothingFound(t *testing.T) {
	tests := []struct {
		name string
		dirs func(t *testing.T) []string
	}{
		{"no directories", func(t *testing.T) []string { return nil }},
		{"missing directories", func(t *testing.T) []string {
			return []string{filepath.Join(t.TempDir(), "nope")}
		}},
		{"only hidden entries", func(t *testing.T) []string {
			dir := t.TempDir()
			writeFile(t, dir, "h.desktop", descriptor("Hidden", "h")+"NoDisplay=true\n")
			return []string{dir}
		}},
		{"only broken entries", func(t *testing.T) []string {
			dir := t.TempDir()
			writeFile(t, dir, "b.desktop", "[Other]\nName=B\n")
			return []string{dir}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newScanner(tt.dirs(t)...).Scan()

			assert.True(t, c.Fallback)
			assert.Equal(t, []models.AppEntry{models.FallbackEntry()}, c.Entries)
		})
	}
}

func TestScan_DedupAcrossDirectories(t *testing.T) {
	system := t.TempDir()
	local := t.TempDir()
	writeFile(t, system, "app.desktop", descriptor("App", "app %U"))
	writeFile(t, local, "app-copy.desktop", descriptor("App", "app"))
	writeFile(t, local, "other.desktop", descriptor("App", "app --other"))

	c := newScanner(system, local).Scan()

	require.Equal(t, 2, c.Len(), "%+v", c.Entries)
	assert.Equal(t, filepath.Join(system, "app.desktop"), c.Entries[0].Source, "first directory should win")
	assert.Equal(t, 1, c.Duplicates)
}

func TestScan_SortsCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.desktop", descriptor("gamma", "g"))
	writeFile(t, dir, "2.desktop", descriptor("Alpha", "a"))
	writeFile(t, dir, "3.desktop", descriptor("beta", "b"))

	c := newScanner(dir).Scan()

	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, names(c.Entries))
}

func TestScan_CountsHiddenAndSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.desktop", descriptor("Ok", "ok"))
	writeFile(t, dir, "hidden.desktop", descriptor("Hidden", "hidden")+"NoDisplay=True\n")
	writeFile(t, dir, "nosection.desktop", "[Desktop Action x]\nName=X\n")
	writeFile(t, dir, "garbage.desktop", "[Desktop Entry]\nthis is not a key value line\n")
	writeFile(t, dir, "readme.txt", descriptor("Readme", "cat"))

	c := newScanner(dir).Scan()

	assert.Equal(t, 4, c.Files)
	assert.Equal(t, 1, c.Hidden)
	assert.Equal(t, 2, c.Skipped)
	assert.Equal(t, []string{"Ok"}, names(c.Entries))

	require.Error(t, c.Err, "Err should report skipped files")
	assert.ErrorIs(t, c.Err, desktop.ErrMissingSection)
	assert.ErrorIs(t, c.Err, desktop.ErrUnreadable)
	assert.False(t, errors.Is(c.Err, desktop.ErrHidden), "hidden entries are not errors")
}

func TestScan_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.desktop"), 0755))
	writeFile(t, dir, "a.desktop", descriptor("A", "a"))

	c := newScanner(dir).Scan()

	assert.Equal(t, 1, c.Files)
	assert.Equal(t, 0, c.Skipped)
}

func TestScan_IgnoresDotFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.desktop", descriptor("Dotted", "dotted"))
	writeFile(t, dir, ".desktop", descriptor("Bare", "bare"))
	writeFile(t, dir, "visible.desktop", descriptor("Visible", "visible"))

	c := newScanner(dir).Scan()

	assert.Equal(t, 1, c.Files)
	assert.Equal(t, []string{"Visible"}, names(c.Entries))
}

func TestScan_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	for i, n := range []string{"Zed", "alpha", "Mid", "beta", "Alpha"} {
		writeFile(t, dirA, string(rune('a'+i))+".desktop", descriptor(n, strings.ToLower(n)))
		writeFile(t, dirB, string(rune('f'+i))+".desktop", descriptor(n, strings.ToLower(n)+" --b"))
	}
	s := newScanner(dirA, dirB)

	first := s.Scan()
	for i := 0; i < 5; i++ {
		require.Equal(t, first.Entries, s.Scan().Entries, "scan %d differs", i)
	}
}

// fakeParser maps paths to entries; unknown paths fail.
type fakeParser map[string]models.AppEntry

func (f fakeParser) Parse(path string) (models.AppEntry, error) {
	e, ok := f[path]
	if !ok {
		return models.AppEntry{}, desktop.ErrUnreadable
	}
	return e, nil
}

func TestScan_UsesInjectedParser(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.desktop", "")
	writeFile(t, dir, "b.desktop", "")

	p := fakeParser{
		filepath.Join(dir, "a.desktop"): {ID: "a", Name: "From Fake", Exec: "x"},
	}
	c := New(p, []string{dir}).Scan()

	assert.Equal(t, []string{"From Fake"}, names(c.Entries))
	assert.Equal(t, 1, c.Skipped)
}

func genEntries() *rapid.Generator[[]models.AppEntry] {
	return rapid.SliceOf(rapid.Custom(func(t *rapid.T) models.AppEntry {
		return models.AppEntry{
			ID:   rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "id"),
			Name: rapid.SampledFrom([]string{"", "a", "A", "b", "B", "app", "App", "Zed"}).Draw(t, "name"),
			Exec: rapid.SampledFrom([]string{"x", "y", "x --flag"}).Draw(t, "exec"),
		}
	}))
}

func TestDedup_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := genEntries().Draw(t, "entries")
		out := Dedup(entries)

		seen := map[models.DedupKey]bool{}
		for _, e := range out {
			require.False(t, seen[e.Key()], "duplicate key %+v", e.Key())
			seen[e.Key()] = true
		}
		for _, e := range entries {
			require.True(t, seen[e.Key()], "key %+v lost", e.Key())
		}

		// First occurrence wins and relative order is kept.
		j := 0
		firsts := map[models.DedupKey]bool{}
		for _, e := range entries {
			if firsts[e.Key()] {
				continue
			}
			firsts[e.Key()] = true
			require.Equal(t, e, out[j], "out[%d]", j)
			j++
		}

		require.Equal(t, out, Dedup(out), "Dedup is not idempotent")
	})
}

func TestSortByName_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := genEntries().Draw(t, "entries")
		for i := range entries {
			entries[i].ID = string(rune('A' + i%26))
			entries[i].Source = strings.Repeat("s", i)
		}
		sorted := append([]models.AppEntry(nil), entries...)
		SortByName(sorted)

		require.Len(t, sorted, len(entries))
		for i := 1; i < len(sorted); i++ {
			a, b := strings.ToLower(sorted[i-1].Name), strings.ToLower(sorted[i].Name)
			require.LessOrEqual(t, a, b, "not sorted at %d", i)
			// Source length encodes the input position.
			if a == b {
				require.Less(t, len(sorted[i-1].Source), len(sorted[i].Source), "sort is not stable at %d", i)
			}
		}
	})
}
