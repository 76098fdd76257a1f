// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "source_key", Type: field.TypeString, Size: 500},
		{Name: "ocr_provider", Type: field.TypeString, Default: "textract"},
		{Name: "llm_provider", Type: field.TypeString, Default: "gemini_2.5"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[8]},
			},
		},
	}
	// OcrCoordinatesColumns holds the columns for the "ocr_coordinates" table.
	OcrCoordinatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "left", Type: field.TypeInt},
		{Name: "top", Type: field.TypeInt},
		{Name: "width", Type: field.TypeInt},
		{Name: "height", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "field_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// OcrCoordinatesTable holds the schema information for the "ocr_coordinates" table.
	OcrCoordinatesTable = &schema.Table{
		Name:       "ocr_coordinates",
		Columns:    OcrCoordinatesColumns,
		PrimaryKey: []*schema.Column{OcrCoordinatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_coordinates_jobs_boxes",
				Columns:    []*schema.Column{OcrCoordinatesColumns[9]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrbox_job_id_page_number",
				Unique:  false,
				Columns: []*schema.Column{OcrCoordinatesColumns[9], OcrCoordinatesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		OcrCoordinatesTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	OcrCoordinatesTable.ForeignKeys[0].RefTable = JobsTable
	OcrCoordinatesTable.Annotation = &entsql.Annotation{
		Table: "ocr_coordinates",
	}
}
