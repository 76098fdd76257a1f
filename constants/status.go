package constants

import "errors"

// ErrInvalidStatus is returned when a status string is not one of the
// stable values.
var ErrInvalidStatus = errors.New("invalid job status")

// JobStatus is the canonical lifecycle status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending             JobStatus = "pending"              // created at submission, waiting for a worker
	JobStatusProcessing          JobStatus = "processing"           // claimed by a worker
	JobStatusOCRCompleted        JobStatus = "ocr_completed"        // stage 1 done: coordinates stored
	JobStatusExtractionCompleted JobStatus = "extraction_completed" // stage 2 done: fields extracted
	JobStatusReviewReady         JobStatus = "review_ready"         // awaiting human review
	JobStatusCompleted           JobStatus = "completed"            // terminal success
	JobStatusFailed              JobStatus = "failed"               // terminal failure
)

// Statuses holds all stable status values.
var Statuses = []JobStatus{
	JobStatusPending,
	JobStatusProcessing,
	JobStatusOCRCompleted,
	JobStatusExtractionCompleted,
	JobStatusReviewReady,
	JobStatusCompleted,
	JobStatusFailed,
}

// Checkpoint returns the progress value committed together with a status
// transition. Progress moves through these fixed checkpoints only; callers
// must not assume intermediate values are reachable.
func (s JobStatus) Checkpoint() int {
	switch s {
	case JobStatusProcessing:
		return 10
	case JobStatusOCRCompleted:
		return 40
	case JobStatusExtractionCompleted:
		return 70
	case JobStatusReviewReady:
		return 90
	case JobStatusCompleted:
		return 100
	default:
		// pending starts at 0; failed resets to 0.
		return 0
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Valid reports whether s is one of the stable status values.
func (s JobStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}
