// Code generated by ent, DO NOT EDIT.

package vectorrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the vectorrecord type in the database.
	Label = "vector_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "vector_id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldEmbeddingID holds the string denoting the embedding_id field in the database.
	FieldEmbeddingID = "embedding_id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDoc holds the string denoting the doc edge name in mutations.
	EdgeDoc = "doc"
	// CrawledItemFieldID holds the string denoting the ID field of the CrawledItem.
	CrawledItemFieldID = "item_id"
	// Table holds the table name of the vectorrecord in the database.
	Table = "vector_records"
	// DocTable is the table that holds the doc relation/edge.
	DocTable = "vector_records"
	// DocInverseTable is the table name for the CrawledItem entity.
	// It exists in this package in order to avoid circular dependency with the "crawleditem" package.
	DocInverseTable = "crawled_items"
	// DocColumn is the table column denoting the doc relation/edge.
	DocColumn = "doc_id"
)

// Columns holds all SQL columns for vectorrecord fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldEmbeddingID,
	FieldExternalID,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the VectorRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByEmbeddingID orders the results by the embedding_id field.
func ByEmbeddingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocField orders the results by doc field.
func ByDocField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocStep(), sql.OrderByField(field, opts...))
	}
}
func newDocStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocInverseTable, CrawledItemFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, DocTable, DocColumn),
	)
}
