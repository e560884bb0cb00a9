// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditRecordsColumns holds the columns for the "audit_records" table.
	AuditRecordsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "signature", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditRecordsTable holds the schema information for the "audit_records" table.
	AuditRecordsTable = &schema.Table{
		Name:       "audit_records",
		Columns:    AuditRecordsColumns,
		PrimaryKey: []*schema.Column{AuditRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditrecord_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[1], AuditRecordsColumns[4]},
			},
			{
				Name:    "auditrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[4]},
			},
		},
	}
	// CrawledItemsColumns holds the columns for the "crawled_items" table.
	CrawledItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "raw_html_path", Type: field.TypeString, Nullable: true},
		{Name: "screenshot_path", Type: field.TypeString, Nullable: true},
		{Name: "clean_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "language", Type: field.TypeEnum, Enums: []string{"hi", "ta", "kn", "en"}, Default: "en"},
		{Name: "lang_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "translit", Type: field.TypeBool, Default: false},
		{Name: "heuristic_score", Type: field.TypeFloat64, Default: 0},
		{Name: "classifier_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "label", Type: field.TypeEnum, Enums: []string{"pending", "benign", "scam", "needs_review"}, Default: "pending"},
		{Name: "image_hashes", Type: field.TypeJSON, Nullable: true},
		{Name: "whois_data", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "ingested_at", Type: field.TypeTime},
	}
	// CrawledItemsTable holds the schema information for the "crawled_items" table.
	CrawledItemsTable = &schema.Table{
		Name:       "crawled_items",
		Columns:    CrawledItemsColumns,
		PrimaryKey: []*schema.Column{CrawledItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "crawleditem_label",
				Unique:  false,
				Columns: []*schema.Column{CrawledItemsColumns[11]},
			},
			{
				Name:    "crawleditem_domain",
				Unique:  false,
				Columns: []*schema.Column{CrawledItemsColumns[2]},
			},
			{
				Name:    "crawleditem_ingested_at",
				Unique:  false,
				Columns: []*schema.Column{CrawledItemsColumns[15]},
			},
		},
	}
	// ModelVersionsColumns holds the columns for the "model_versions" table.
	ModelVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "classifier_version", Type: field.TypeString},
		{Name: "embedding_model", Type: field.TypeString},
		{Name: "llm_version", Type: field.TypeString},
		{Name: "dimension", Type: field.TypeInt},
		{Name: "thresholds", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelVersionsTable holds the schema information for the "model_versions" table.
	ModelVersionsTable = &schema.Table{
		Name:       "model_versions",
		Columns:    ModelVersionsColumns,
		PrimaryKey: []*schema.Column{ModelVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelversion_is_active",
				Unique:  false,
				Columns: []*schema.Column{ModelVersionsColumns[6]},
			},
			{
				Name:    "modelversion_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelVersionsColumns[7]},
			},
		},
	}
	// ReviewEntriesColumns holds the columns for the "review_entries" table.
	ReviewEntriesColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_review", "approved", "rejected", "escalated"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doc_id", Type: field.TypeString},
		{Name: "assigned_to", Type: field.TypeString, Nullable: true},
	}
	// ReviewEntriesTable holds the schema information for the "review_entries" table.
	ReviewEntriesTable = &schema.Table{
		Name:       "review_entries",
		Columns:    ReviewEntriesColumns,
		PrimaryKey: []*schema.Column{ReviewEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_entries_crawled_items_review_entries",
				Columns:    []*schema.Column{ReviewEntriesColumns[6]},
				RefColumns: []*schema.Column{CrawledItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "review_entries_users_assigned_reviews",
				Columns:    []*schema.Column{ReviewEntriesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewentry_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEntriesColumns[1], ReviewEntriesColumns[2], ReviewEntriesColumns[4]},
			},
			{
				Name:    "reviewentry_assigned_to_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewEntriesColumns[7], ReviewEntriesColumns[1]},
			},
			{
				Name:    "reviewentry_doc_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEntriesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "reviewer", "admin"}, Default: "user"},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// VectorRecordsColumns holds the columns for the "vector_records" table.
	VectorRecordsColumns = []*schema.Column{
		{Name: "vector_id", Type: field.TypeString, Unique: true},
		{Name: "embedding_id", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "doc_id", Type: field.TypeString, Unique: true},
	}
	// VectorRecordsTable holds the schema information for the "vector_records" table.
	VectorRecordsTable = &schema.Table{
		Name:       "vector_records",
		Columns:    VectorRecordsColumns,
		PrimaryKey: []*schema.Column{VectorRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vector_records_crawled_items_vector_record",
				Columns:    []*schema.Column{VectorRecordsColumns[5]},
				RefColumns: []*schema.Column{CrawledItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vectorrecord_embedding_id",
				Unique:  false,
				Columns: []*schema.Column{VectorRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditRecordsTable,
		CrawledItemsTable,
		ModelVersionsTable,
		ReviewEntriesTable,
		UsersTable,
		VectorRecordsTable,
	}
)

func init() {
	ReviewEntriesTable.ForeignKeys[0].RefTable = CrawledItemsTable
	ReviewEntriesTable.ForeignKeys[1].RefTable = UsersTable
	VectorRecordsTable.ForeignKeys[0].RefTable = CrawledItemsTable
}
