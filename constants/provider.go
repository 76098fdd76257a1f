package constants

// OCR provider names as stored on the job's ocr_provider field.
const (
	OCRProviderTextract  = "textract"  // asynchronous: submit + poll until terminal
	OCRProviderTesseract = "tesseract" // synchronous: single call per page
)

// OCRProviders holds the selectable OCR backends.
var OCRProviders = []string{OCRProviderTextract, OCRProviderTesseract}

// DefaultLLMProvider is stored on new jobs for the downstream extraction
// stage. The field is fixed at submission and never mutated here.
const DefaultLLMProvider = "gemini_2.5"
