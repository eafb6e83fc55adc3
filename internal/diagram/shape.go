package diagram

// Shape is the kind of outline a figure is drawn with.
type Shape int

const (
	None Shape = iota
	Rectangle
	Triangle
	Ellipse
)

func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "Rectangle"
	case Triangle:
		return "Triangle"
	case Ellipse:
		return "Ellipse"
	default:
		return "Unknown"
	}
}

// IsDrawable reports whether s names a concrete outline.
func (s Shape) IsDrawable() bool {
	return s == Rectangle || s == Triangle || s == Ellipse
}

// ParseShape maps a saved shape name back to a Shape. Unknown names yield None.
func ParseShape(name string) Shape {
	switch name {
	case "Rectangle":
		return Rectangle
	case "Triangle":
		return Triangle
	case "Ellipse":
		return Ellipse
	default:
		return None
	}
}
