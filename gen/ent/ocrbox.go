// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielokoye/invoicescan/gen/ent/job"
	"github.com/danielokoye/invoicescan/gen/ent/ocrbox"
	"github.com/google/uuid"
)

// OCRBox is the model entity for the OCRBox schema.
type OCRBox struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// Left holds the value of the "left" field.
	Left int `json:"left,omitempty"`
	// Top holds the value of the "top" field.
	Top int `json:"top,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName *string `json:"field_name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OCRBoxQuery when eager-loading is set.
	Edges        OCRBoxEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OCRBoxEdges holds the relations/edges for other nodes in the graph.
type OCRBoxEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OCRBoxEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OCRBox) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrbox.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case ocrbox.FieldPageNumber, ocrbox.FieldLeft, ocrbox.FieldTop, ocrbox.FieldWidth, ocrbox.FieldHeight:
			values[i] = new(sql.NullInt64)
		case ocrbox.FieldText, ocrbox.FieldFieldName:
			values[i] = new(sql.NullString)
		case ocrbox.FieldID, ocrbox.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OCRBox fields.
func (_m *OCRBox) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrbox.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ocrbox.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case ocrbox.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case ocrbox.FieldLeft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field left", values[i])
			} else if value.Valid {
				_m.Left = int(value.Int64)
			}
		case ocrbox.FieldTop:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field top", values[i])
			} else if value.Valid {
				_m.Top = int(value.Int64)
			}
		case ocrbox.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case ocrbox.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		case ocrbox.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case ocrbox.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case ocrbox.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = new(string)
				*_m.FieldName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OCRBox.
// This includes values selected through modifiers, order, etc.
func (_m *OCRBox) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the OCRBox entity.
func (_m *OCRBox) QueryJob() *JobQuery {
	return NewOCRBoxClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this OCRBox.
// Note that you need to call OCRBox.Unwrap() before calling this method if this OCRBox
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OCRBox) Update() *OCRBoxUpdateOne {
	return NewOCRBoxClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OCRBox entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OCRBox) Unwrap() *OCRBox {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OCRBox is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OCRBox) String() string {
	var builder strings.Builder
	builder.WriteString("OCRBox(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("left=")
	builder.WriteString(fmt.Sprintf("%v", _m.Left))
	builder.WriteString(", ")
	builder.WriteString("top=")
	builder.WriteString(fmt.Sprintf("%v", _m.Top))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.FieldName; v != nil {
		builder.WriteString("field_name=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// OCRBoxes is a parsable slice of OCRBox.
type OCRBoxes []*OCRBox
