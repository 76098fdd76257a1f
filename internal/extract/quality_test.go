package extract

import (
	"testing"

	"github.com/danielokoye/invoicescan/internal/entity"
)

func TestMeanConfidence(t *testing.T) {
	tests := []struct {
		name  string
		boxes []entity.OCRBox
		want  float64
	}{
		{
			name:  "empty input scores zero",
			boxes: nil,
			want:  0.0,
		},
		{
			name: "two boxes",
			boxes: []entity.OCRBox{
				{Confidence: 80},
				{Confidence: 100},
			},
			want: 90.0,
		},
		{
			name: "single box",
			boxes: []entity.OCRBox{
				{Confidence: 42.5},
			},
			want: 42.5,
		},
		{
			name: "zero confidence boxes still count",
			boxes: []entity.OCRBox{
				{Confidence: 0},
				{Confidence: 0},
				{Confidence: 30},
			},
			want: 10.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeanConfidence(tt.boxes); got != tt.want {
				t.Errorf("MeanConfidence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPagesHelpers(t *testing.T) {
	pages := Pages{
		1: {{Text: "a"}, {Text: "b"}},
		2: nil,
		3: {{Text: "c"}},
	}
	if got := pages.TotalBoxes(); got != 3 {
		t.Errorf("TotalBoxes() = %d, want 3", got)
	}
	if got := len(pages.Flatten()); got != 3 {
		t.Errorf("len(Flatten()) = %d, want 3", got)
	}
	if got := len(pages); got != 3 {
		t.Errorf("page count = %d, want 3 (empty pages count as processed)", got)
	}
}
