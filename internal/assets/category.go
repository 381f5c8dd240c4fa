package assets

// Category identifies one aggregated output served by the gadget.
type Category string

const (
	Stylesheet  Category = "stylesheet"
	Application Category = "application"
	Loader      Category = "loader"
)

// Categories returns every category in a stable order.
func Categories() []Category {
	return []Category{Stylesheet, Application, Loader}
}

// MediaType returns the Content-Type the category is served with.
func (c Category) MediaType() string {
	switch c {
	case Stylesheet:
		return "text/css"
	case Application, Loader:
		return "application/javascript"
	default:
		return "application/octet-stream"
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case Stylesheet, Application, Loader:
		return true
	default:
		return false
	}
}
