// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/danielokoye/invoicescan/db/ent/schema"
	"github.com/danielokoye/invoicescan/gen/ent/job"
	"github.com/danielokoye/invoicescan/gen/ent/ocrbox"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[1].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescFileName is the schema descriptor for file_name field.
	jobDescFileName := jobFields[2].Descriptor()
	// job.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	job.FileNameValidator = func() func(string) error {
		validators := jobDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescSourceKey is the schema descriptor for source_key field.
	jobDescSourceKey := jobFields[3].Descriptor()
	// job.SourceKeyValidator is a validator for the "source_key" field. It is called by the builders before save.
	job.SourceKeyValidator = func() func(string) error {
		validators := jobDescSourceKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_key string) error {
			for _, fn := range fns {
				if err := fn(source_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescOcrProvider is the schema descriptor for ocr_provider field.
	jobDescOcrProvider := jobFields[4].Descriptor()
	// job.DefaultOcrProvider holds the default value on creation for the ocr_provider field.
	job.DefaultOcrProvider = jobDescOcrProvider.Default.(string)
	// jobDescLlmProvider is the schema descriptor for llm_provider field.
	jobDescLlmProvider := jobFields[5].Descriptor()
	// job.DefaultLlmProvider holds the default value on creation for the llm_provider field.
	job.DefaultLlmProvider = jobDescLlmProvider.Default.(string)
	// jobDescProgress is the schema descriptor for progress field.
	jobDescProgress := jobFields[6].Descriptor()
	// job.DefaultProgress holds the default value on creation for the progress field.
	job.DefaultProgress = jobDescProgress.Default.(int)
	// job.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	job.ProgressValidator = func() func(int) error {
		validators := jobDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[9].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	ocrboxFields := schema.OCRBox{}.Fields()
	_ = ocrboxFields
	// ocrboxDescPageNumber is the schema descriptor for page_number field.
	ocrboxDescPageNumber := ocrboxFields[2].Descriptor()
	// ocrbox.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	ocrbox.PageNumberValidator = ocrboxDescPageNumber.Validators[0].(func(int) error)
	// ocrboxDescLeft is the schema descriptor for left field.
	ocrboxDescLeft := ocrboxFields[3].Descriptor()
	// ocrbox.LeftValidator is a validator for the "left" field. It is called by the builders before save.
	ocrbox.LeftValidator = ocrboxDescLeft.Validators[0].(func(int) error)
	// ocrboxDescTop is the schema descriptor for top field.
	ocrboxDescTop := ocrboxFields[4].Descriptor()
	// ocrbox.TopValidator is a validator for the "top" field. It is called by the builders before save.
	ocrbox.TopValidator = ocrboxDescTop.Validators[0].(func(int) error)
	// ocrboxDescWidth is the schema descriptor for width field.
	ocrboxDescWidth := ocrboxFields[5].Descriptor()
	// ocrbox.WidthValidator is a validator for the "width" field. It is called by the builders before save.
	ocrbox.WidthValidator = ocrboxDescWidth.Validators[0].(func(int) error)
	// ocrboxDescHeight is the schema descriptor for height field.
	ocrboxDescHeight := ocrboxFields[6].Descriptor()
	// ocrbox.HeightValidator is a validator for the "height" field. It is called by the builders before save.
	ocrbox.HeightValidator = ocrboxDescHeight.Validators[0].(func(int) error)
	// ocrboxDescConfidence is the schema descriptor for confidence field.
	ocrboxDescConfidence := ocrboxFields[8].Descriptor()
	// ocrbox.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ocrbox.ConfidenceValidator = func() func(float32) error {
		validators := ocrboxDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrboxDescFieldName is the schema descriptor for field_name field.
	ocrboxDescFieldName := ocrboxFields[9].Descriptor()
	// ocrbox.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	ocrbox.FieldNameValidator = ocrboxDescFieldName.Validators[0].(func(string) error)
	// ocrboxDescID is the schema descriptor for id field.
	ocrboxDescID := ocrboxFields[0].Descriptor()
	// ocrbox.DefaultID holds the default value on creation for the id field.
	ocrbox.DefaultID = ocrboxDescID.Default.(func() uuid.UUID)
}
