// Package icons finds image files for symbolic icon names and picks glyph
// fallbacks for entries that have none.
package icons

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver looks up icon names in a fixed, ordered set of roots.
// It only probes for existence; no file is ever opened.
type Resolver struct {
	roots  []string
	exists func(path string) bool
}

// NewResolver creates a Resolver searching roots in the given order.
func NewResolver(roots []string) *Resolver {
	return &Resolver{
		roots:  roots,
		exists: pathExists,
	}
}

// Resolve returns the path of the first image matching iconName.
// The boolean is false when nothing matched, which is an expected outcome.
func (r *Resolver) Resolve(iconName string) (string, bool) {
	iconName = strings.TrimSpace(iconName)
	if iconName == "" {
		return "", false
	}

	if filepath.IsAbs(iconName) && r.exists(iconName) {
		return iconName, true
	}

	name := cleanName(iconName)
	if name == "" {
		return "", false
	}

	roots := r.existingRoots()

	// Direct files in each root take precedence over themed subdirectories.
	for _, root := range roots {
		if p, ok := r.probe(root, name); ok {
			return p, true
		}
	}

	lower := strings.ToLower(name)
	for _, root := range roots {
		for _, res := range resolutions {
			for _, cat := range categories {
				dir := filepath.Join(root, res, cat)
				for _, ext := range extensions {
					candidate := filepath.Join(dir, name+ext)
					if r.exists(candidate) {
						return candidate, true
					}
					if lower != name {
						candidate = filepath.Join(dir, lower+ext)
						if r.exists(candidate) {
							return candidate, true
						}
					}
				}
			}
		}
	}

	return "", false
}

// probe checks dir/name.ext for each known extension.
func (r *Resolver) probe(dir, name string) (string, bool) {
	for _, ext := range extensions {
		candidate := filepath.Join(dir, name+ext)
		if r.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *Resolver) existingRoots() []string {
	roots := make([]string, 0, len(r.roots))
	for _, root := range r.roots {
		if root != "" && r.exists(root) {
			roots = append(roots, root)
		}
	}
	return roots
}

// cleanName reduces an icon reference to a bare name: the directory part is
// dropped and a trailing image extension is removed. Dotted names such as
// org.gnome.Nautilus keep their dots.
func cleanName(iconName string) string {
	name := filepath.Base(iconName)
	ext := filepath.Ext(name)
	if imageExtensions[strings.ToLower(ext)] {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
