package ocr

import (
	"strconv"
	"strings"

	"github.com/danielokoye/invoicescan/internal/entity"
)

// Tesseract TSV column layout:
// level page_num block_num par_num line_num word_num left top width height conf text
const tsvColumns = 12

// parseTSV converts tesseract TSV output for a single page image into
// boxes. Structural rows (pages, blocks, lines) carry conf -1 and are
// not text fragments; whitespace-only text is dropped outright.
func parseTSV(out []byte, page int) []entity.OCRBox {
	lines := strings.Split(string(out), "\n")
	var boxes []entity.OCRBox
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < tsvColumns {
			continue // defensive
		}
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		text := strings.TrimSpace(strings.Join(cols[11:], "\t"))
		if text == "" {
			continue
		}
		left, err1 := strconv.Atoi(cols[6])
		top, err2 := strconv.Atoi(cols[7])
		width, err3 := strconv.Atoi(cols[8])
		height, err4 := strconv.Atoi(cols[9])
		conf, err5 := strconv.ParseFloat(confStr, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		boxes = append(boxes, entity.OCRBox{
			PageNumber: page,
			Left:       left,
			Top:        top,
			Width:      width,
			Height:     height,
			Text:       text,
			Confidence: float32(conf),
		})
	}
	return boxes
}
