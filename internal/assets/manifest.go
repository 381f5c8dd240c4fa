package assets

import "slices"

// Manifest is the ordered list of asset keys whose contents make up one category.
// Keys are slash-separated paths relative to the storage base path.
type Manifest struct {
	category Category
	files    []string
}

// NewManifest copies files so later changes to the caller's slice do not leak in.
func NewManifest(category Category, files ...string) Manifest {
	return Manifest{
		category: category,
		files:    slices.Clone(files),
	}
}

func (m Manifest) Category() Category {
	return m.category
}

// Files returns a copy of the ordered asset keys.
func (m Manifest) Files() []string {
	return slices.Clone(m.files)
}

func (m Manifest) Len() int {
	return len(m.files)
}

var defaultManifests = map[Category][]string{
	Stylesheet: {
		"lib/oojs-ui/oojs-ui-mediawiki.css",
		"lib/codemirror/codemirror.css",
		"css/form_builder.css",
		"css/wikilabels.css",
	},
	Application: {
		"js/wikilabels.gadget.js",
	},
	Loader: {
		"js/wikilabels.loader.js",
	},
}

// DefaultFiles returns the built-in asset keys for category.
func DefaultFiles(category Category) []string {
	return slices.Clone(defaultManifests[category])
}
