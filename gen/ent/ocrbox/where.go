// Code generated by ent, DO NOT EDIT.

package ocrbox

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielokoye/invoicescan/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldJobID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldPageNumber, v))
}

// Left applies equality check predicate on the "left" field. It's identical to LeftEQ.
func Left(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldLeft, v))
}

// Top applies equality check predicate on the "top" field. It's identical to TopEQ.
func Top(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldTop, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldHeight, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldConfidence, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldFieldName, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldJobID, vs...))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldPageNumber, v))
}

// LeftEQ applies the EQ predicate on the "left" field.
func LeftEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldLeft, v))
}

// LeftNEQ applies the NEQ predicate on the "left" field.
func LeftNEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldLeft, v))
}

// LeftIn applies the In predicate on the "left" field.
func LeftIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldLeft, vs...))
}

// LeftNotIn applies the NotIn predicate on the "left" field.
func LeftNotIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldLeft, vs...))
}

// LeftGT applies the GT predicate on the "left" field.
func LeftGT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldLeft, v))
}

// LeftGTE applies the GTE predicate on the "left" field.
func LeftGTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldLeft, v))
}

// LeftLT applies the LT predicate on the "left" field.
func LeftLT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldLeft, v))
}

// LeftLTE applies the LTE predicate on the "left" field.
func LeftLTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldLeft, v))
}

// TopEQ applies the EQ predicate on the "top" field.
func TopEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldTop, v))
}

// TopNEQ applies the NEQ predicate on the "top" field.
func TopNEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldTop, v))
}

// TopIn applies the In predicate on the "top" field.
func TopIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldTop, vs...))
}

// TopNotIn applies the NotIn predicate on the "top" field.
func TopNotIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldTop, vs...))
}

// TopGT applies the GT predicate on the "top" field.
func TopGT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldTop, v))
}

// TopGTE applies the GTE predicate on the "top" field.
func TopGTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldTop, v))
}

// TopLT applies the LT predicate on the "top" field.
func TopLT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldTop, v))
}

// TopLTE applies the LTE predicate on the "top" field.
func TopLTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldTop, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldWidth, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldHeight, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldContainsFold(FieldText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldConfidence, v))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameIsNil applies the IsNil predicate on the "field_name" field.
func FieldNameIsNil() predicate.OCRBox {
	return predicate.OCRBox(sql.FieldIsNull(FieldFieldName))
}

// FieldNameNotNil applies the NotNil predicate on the "field_name" field.
func FieldNameNotNil() predicate.OCRBox {
	return predicate.OCRBox(sql.FieldNotNull(FieldFieldName))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.OCRBox {
	return predicate.OCRBox(sql.FieldContainsFold(FieldFieldName, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.OCRBox {
	return predicate.OCRBox(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.OCRBox {
	return predicate.OCRBox(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OCRBox) predicate.OCRBox {
	return predicate.OCRBox(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OCRBox) predicate.OCRBox {
	return predicate.OCRBox(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OCRBox) predicate.OCRBox {
	return predicate.OCRBox(sql.NotPredicates(p))
}
