package ocr

import "encoding/json"

// Wire shapes for the textract-style detection API. Field names follow
// the backend's JSON casing.

const (
	jobStateSubmitted  = "SUBMITTED"
	jobStateInProgress = "IN_PROGRESS"
	jobStateSucceeded  = "SUCCEEDED"
	jobStateFailed     = "FAILED"
)

const (
	blockTypePage = "PAGE"
	blockTypeLine = "LINE"
	blockTypeWord = "WORD"
)

type wirePoint struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

type wireGeometry struct {
	Polygon []wirePoint `json:"Polygon"`
}

type wireBlock struct {
	BlockType  string       `json:"BlockType"`
	Text       string       `json:"Text"`
	Confidence float64      `json:"Confidence"`
	Geometry   wireGeometry `json:"Geometry"`
}

type s3Object struct {
	Bucket string `json:"Bucket"`
	Name   string `json:"Name"`
}

type documentLocation struct {
	S3Object s3Object `json:"S3Object"`
}

type startDocumentTextDetectionInput struct {
	DocumentLocation documentLocation `json:"DocumentLocation"`
}

type startDocumentTextDetectionOutput struct {
	JobID string `json:"JobId"`
}

type getDocumentTextDetectionInput struct {
	JobID string `json:"JobId"`
}

type getDocumentTextDetectionOutput struct {
	JobStatus     string            `json:"JobStatus"`
	StatusMessage string            `json:"StatusMessage"`
	Blocks        []json.RawMessage `json:"Blocks"`
}

type inlineDocument struct {
	Bytes []byte `json:"Bytes"` // base64-encoded on the wire
}

type detectDocumentTextInput struct {
	Document inlineDocument `json:"Document"`
}

type detectDocumentTextOutput struct {
	Blocks []json.RawMessage `json:"Blocks"`
}
