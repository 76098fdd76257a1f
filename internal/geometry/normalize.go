package geometry

import "errors"

// Reference page dimensions used to project normalized coordinates into
// pixels: A4 at 300 DPI. Backends report polygons in [0,1] of page size
// and the projection always targets this fixed page, so scans at other
// sizes get proportionally wrong absolute coordinates. Kept for
// compatibility with stored data; changing it changes every coordinate.
const (
	ReferencePageWidth  = 2480
	ReferencePageHeight = 3508
)

// Point is a polygon vertex in normalized [0,1] page coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in integer pixel units.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// ErrEmptyPolygon is returned when a backend reports geometry without a
// single vertex.
var ErrEmptyPolygon = errors.New("empty polygon")

// Normalize reduces a polygon to its bounding rectangle in pixel units.
// Vertices arrive in no guaranteed order, so the reduction is min/max
// over all of them; width and height are therefore never negative.
func Normalize(poly []Point, pageWidth, pageHeight int) (Rect, error) {
	if len(poly) == 0 {
		return Rect{}, ErrEmptyPolygon
	}
	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{
		Left:   int(minX * float64(pageWidth)),
		Top:    int(minY * float64(pageHeight)),
		Width:  int((maxX - minX) * float64(pageWidth)),
		Height: int((maxY - minY) * float64(pageHeight)),
	}, nil
}
