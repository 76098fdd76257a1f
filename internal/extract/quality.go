package extract

import "github.com/danielokoye/invoicescan/internal/entity"

// MeanConfidence is the pipeline quality metric: the arithmetic mean of
// box confidence on the backend's 0-100 scale. An empty result set is a
// valid outcome and scores 0.0, not an error.
func MeanConfidence(boxes []entity.OCRBox) float64 {
	if len(boxes) == 0 {
		return 0.0
	}
	var sum float64
	for _, b := range boxes {
		sum += float64(b.Confidence)
	}
	return sum / float64(len(boxes))
}

// ConfidenceScorer provides the shared QualityScore implementation;
// providers embed it to satisfy the Provider interface.
type ConfidenceScorer struct{}

func (ConfidenceScorer) QualityScore(boxes []entity.OCRBox) float64 {
	return MeanConfidence(boxes)
}
