// Package court defines the fixed catalogue of geometric primitives that
// make up a regulation NBA half-court diagram.
//
// All coordinates are in the shot-chart coordinate system: hundredths of a
// foot, origin at the base of the hoop, x across the court width, y from the
// baseline toward center court. Angles are in degrees, 0 along the positive
// x axis, increasing counter-clockwise.
package court

// Point is a location on the court plane.
type Point struct {
	X, Y float64
}

// Kind identifies the geometric shape of a Primitive.
type Kind int

const (
	KindCircle Kind = iota
	KindSegment
	KindRect
	KindArc
)

// Primitive is one court marking. Which fields are meaningful depends on
// Kind: circles and arcs use Center/Radius (arcs additionally Start/Sweep),
// segments use From/To, rectangles use Corner/W/H. Rectangles and circles
// are stroked outlines, never filled.
type Primitive struct {
	Name string
	Kind Kind

	Center Point
	Radius float64

	// Start is the arc's initial angle and Sweep its counter-clockwise
	// extent, both in degrees.
	Start, Sweep float64

	From, To Point

	Corner Point
	W, H   float64
}

// Primitives returns the court marking catalogue. The set is fixed: eleven
// markings, plus the full-court boundary rectangle when outerLines is true.
// The free-throw circle's upper and lower halves carry identical style, so
// it is catalogued as one full circle. Each call returns a fresh slice;
// callers may reorder or restyle it freely.
func Primitives(outerLines bool) []Primitive {
	prims := []Primitive{
		{Name: "hoop", Kind: KindCircle, Center: Point{0, 0}, Radius: 7.5},
		{Name: "backboard", Kind: KindSegment, From: Point{-30, -12.5}, To: Point{30, -12.5}},
		{Name: "paint outer", Kind: KindRect, Corner: Point{-80, -47.5}, W: 160, H: 190},
		{Name: "paint inner", Kind: KindRect, Corner: Point{-60, -47.5}, W: 120, H: 190},
		{Name: "free-throw circle", Kind: KindCircle, Center: Point{0, 142.5}, Radius: 60},
		{Name: "restricted area", Kind: KindArc, Center: Point{0, 0}, Radius: 40, Start: 0, Sweep: 180},
		{Name: "corner three left", Kind: KindSegment, From: Point{-220, -47.5}, To: Point{-220, 92.5}},
		{Name: "corner three right", Kind: KindSegment, From: Point{220, -47.5}, To: Point{220, 92.5}},
		{Name: "three-point arc", Kind: KindArc, Center: Point{0, 0}, Radius: 237.5, Start: 22, Sweep: 136},
		{Name: "center circle outer", Kind: KindArc, Center: Point{0, 422.5}, Radius: 60, Start: 180, Sweep: 180},
		{Name: "center circle inner", Kind: KindArc, Center: Point{0, 422.5}, Radius: 20, Start: 180, Sweep: 180},
	}
	if outerLines {
		prims = append(prims, Primitive{
			Name: "boundary", Kind: KindRect, Corner: Point{-250, -47.5}, W: 500, H: 470,
		})
	}
	return prims
}
