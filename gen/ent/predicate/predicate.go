// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// OCRBox is the predicate function for ocrbox builders.
type OCRBox func(*sql.Selector)
