package icons

// Icon theme layout: https://specifications.freedesktop.org/icon-theme-spec/icon-theme-spec-latest.html

var (
	// extensions are tried in this order for every candidate directory.
	extensions = []string{".png", ".svg", ".jpg", ".ico"}

	// resolutions are themed size buckets, largest first.
	resolutions = []string{"256x256", "128x128", "64x64", "48x48", "scalable"}

	// categories are the theme context subdirectories that may hold app icons.
	categories = []string{"apps", "categories", "places", "devices"}

	// imageExtensions are stripped from icon names before searching.
	imageExtensions = map[string]bool{
		".png":  true,
		".svg":  true,
		".svgz": true,
		".jpg":  true,
		".jpeg": true,
		".ico":  true,
		".xpm":  true,
	}
)
