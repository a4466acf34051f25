package entity

// Axis is the direction along which panes are laid out.
type Axis int

const (
	AxisHorizontal Axis = iota // Panes side by side, resized in width
	AxisVertical               // Panes stacked, resized in height
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseAxis converts a configuration value to an Axis.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "horizontal", "h":
		return AxisHorizontal, true
	case "vertical", "v":
		return AxisVertical, true
	default:
		return AxisHorizontal, false
	}
}

// Extent is a two-dimensional size.
type Extent struct {
	Width, Height int
}

// Main returns the component of e along the axis.
func (a Axis) Main(e Extent) int {
	if a == AxisVertical {
		return e.Height
	}
	return e.Width
}

// Cross returns the component of e orthogonal to the axis.
func (a Axis) Cross(e Extent) int {
	if a == AxisVertical {
		return e.Width
	}
	return e.Height
}

// Extent builds an Extent from main and cross components.
func (a Axis) Extent(main, cross int) Extent {
	if a == AxisVertical {
		return Extent{Width: cross, Height: main}
	}
	return Extent{Width: main, Height: cross}
}

// Placement is a pane's final position along the layout axis.
type Placement struct {
	PaneID PaneID
	Offset int
	Size   int
}

// End returns the trailing edge of the placement.
func (p Placement) End() int {
	return p.Offset + p.Size
}
