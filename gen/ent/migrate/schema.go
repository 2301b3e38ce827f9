// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source_format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "pattern_set_version", Type: field.TypeString, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error_kind", Type: field.TypeString, Nullable: true},
		{Name: "last_error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_companies_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_company_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[3], DocumentsColumns[8]},
			},
			{
				Name:    "document_company_id_pattern_set_version",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[4]},
			},
		},
	}
	// ExtractedDataColumns holds the columns for the "extracted_data" table.
	ExtractedDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeUUID},
		{Name: "amounts", Type: field.TypeJSON, Nullable: true},
		{Name: "transaction_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "dates_found", Type: field.TypeJSON, Nullable: true},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "reference_number", Type: field.TypeString, Nullable: true},
		{Name: "transaction_type", Type: field.TypeString, Default: "unknown"},
		{Name: "category", Type: field.TypeString, Default: "uncategorized"},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "payment_method", Type: field.TypeString, Default: "unknown"},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "extraction_method", Type: field.TypeString},
		{Name: "pattern_set_version", Type: field.TypeString},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// ExtractedDataTable holds the schema information for the "extracted_data" table.
	ExtractedDataTable = &schema.Table{
		Name:       "extracted_data",
		Columns:    ExtractedDataColumns,
		PrimaryKey: []*schema.Column{ExtractedDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_data_documents_extraction",
				Columns:    []*schema.Column{ExtractedDataColumns[17]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extracteddata_company_id_extracted_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractedDataColumns[1], ExtractedDataColumns[16]},
			},
			{
				Name:    "extracteddata_company_id_transaction_date",
				Unique:  false,
				Columns: []*schema.Column{ExtractedDataColumns[1], ExtractedDataColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		DocumentsTable,
		ExtractedDataTable,
	}
)

func init() {
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
	DocumentsTable.ForeignKeys[0].RefTable = CompaniesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractedDataTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractedDataTable.Annotation = &entsql.Annotation{
		Table: "extracted_data",
	}
}
