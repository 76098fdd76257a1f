package ocr

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielokoye/invoicescan/constants"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/extract"
)

// NewProvider selects the OCR backend implementation for a job's
// configured ocr_provider name. There is no registry; the two variants
// are wired explicitly.
func NewProvider(name string, cfg common.OCRConfig, httpc *http.Client, log *slog.Logger) (extract.Provider, error) {
	switch name {
	case constants.OCRProviderTextract:
		return NewTextractProvider(cfg, httpc, log), nil
	case constants.OCRProviderTesseract:
		return NewTesseractProvider(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown ocr provider %q", common.ErrValidation, name)
	}
}
