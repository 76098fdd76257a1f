package geometry

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNormalizeVertexOrderInvariance(t *testing.T) {
	// The same quadrilateral in several vertex orders must reduce to the
	// same rectangle.
	base := []Point{
		{X: 0.1, Y: 0.2},
		{X: 0.5, Y: 0.2},
		{X: 0.5, Y: 0.4},
		{X: 0.1, Y: 0.4},
	}
	orders := [][]int{
		{0, 1, 2, 3},
		{2, 3, 0, 1},
		{3, 1, 0, 2},
		{1, 0, 3, 2},
	}

	want, err := Normalize(base, ReferencePageWidth, ReferencePageHeight)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for _, order := range orders {
		poly := make([]Point, len(order))
		for i, idx := range order {
			poly[i] = base[idx]
		}
		got, err := Normalize(poly, ReferencePageWidth, ReferencePageHeight)
		if err != nil {
			t.Fatalf("Normalize(%v): %v", order, err)
		}
		if got != want {
			t.Errorf("order %v: got %+v, want %+v", order, got, want)
		}
	}
}

func TestNormalizeReferencePageArithmetic(t *testing.T) {
	poly := []Point{
		{X: 0.1, Y: 0.2},
		{X: 0.5, Y: 0.4},
	}
	got, err := Normalize(poly, ReferencePageWidth, ReferencePageHeight)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	w, h := float64(2480), float64(3508)
	want := Rect{
		Left:   int(0.1 * w),
		Top:    int(0.2 * h),
		Width:  int((0.5 - 0.1) * w),
		Height: int((0.4 - 0.2) * h),
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Width < 0 || got.Height < 0 {
		t.Errorf("negative dimensions: %+v", got)
	}
}

func TestNormalizeSinglePoint(t *testing.T) {
	got, err := Normalize([]Point{{X: 0.25, Y: 0.75}}, 100, 200)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := Rect{Left: 25, Top: 150, Width: 0, Height: 0}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeEmptyPolygon(t *testing.T) {
	_, err := Normalize(nil, ReferencePageWidth, ReferencePageHeight)
	if !errors.Is(err, ErrEmptyPolygon) {
		t.Fatalf("got %v, want ErrEmptyPolygon", err)
	}
}

func TestNormalizeContainsAllVertices(t *testing.T) {
	// Property: the output rectangle contains the pixel projection of
	// every input vertex.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(7)
		poly := make([]Point, n)
		for j := range poly {
			poly[j] = Point{X: rng.Float64(), Y: rng.Float64()}
		}
		rect, err := Normalize(poly, ReferencePageWidth, ReferencePageHeight)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		for _, p := range poly {
			px := int(p.X * ReferencePageWidth)
			py := int(p.Y * ReferencePageHeight)
			// Truncation on width/height can leave the far edge one
			// pixel short of the furthest vertex.
			if px < rect.Left || px > rect.Left+rect.Width+1 {
				t.Fatalf("vertex x=%d outside [%d,%d]", px, rect.Left, rect.Left+rect.Width+1)
			}
			if py < rect.Top || py > rect.Top+rect.Height+1 {
				t.Fatalf("vertex y=%d outside [%d,%d]", py, rect.Top, rect.Top+rect.Height+1)
			}
		}
	}
}

func TestNormalizeFixedPoint(t *testing.T) {
	// Re-normalizing the four corners of an output rectangle yields the
	// same rectangle. Dyadic coordinates keep the pixel projection exact
	// so the round trip is not at the mercy of float truncation.
	poly := []Point{
		{X: 0.125, Y: 0.25},
		{X: 0.75, Y: 0.5},
		{X: 0.5, Y: 0.75},
	}
	first, err := Normalize(poly, ReferencePageWidth, ReferencePageHeight)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	corners := []Point{
		{X: float64(first.Left) / ReferencePageWidth, Y: float64(first.Top) / ReferencePageHeight},
		{X: float64(first.Left+first.Width) / ReferencePageWidth, Y: float64(first.Top) / ReferencePageHeight},
		{X: float64(first.Left+first.Width) / ReferencePageWidth, Y: float64(first.Top+first.Height) / ReferencePageHeight},
		{X: float64(first.Left) / ReferencePageWidth, Y: float64(first.Top+first.Height) / ReferencePageHeight},
	}
	second, err := Normalize(corners, ReferencePageWidth, ReferencePageHeight)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if second != first {
		t.Errorf("not a fixed point: first %+v, second %+v", first, second)
	}
}
