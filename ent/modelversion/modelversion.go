// Code generated by ent, DO NOT EDIT.

package modelversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelversion type in the database.
	Label = "model_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldClassifierVersion holds the string denoting the classifier_version field in the database.
	FieldClassifierVersion = "classifier_version"
	// FieldEmbeddingModel holds the string denoting the embedding_model field in the database.
	FieldEmbeddingModel = "embedding_model"
	// FieldLlmVersion holds the string denoting the llm_version field in the database.
	FieldLlmVersion = "llm_version"
	// FieldDimension holds the string denoting the dimension field in the database.
	FieldDimension = "dimension"
	// FieldThresholds holds the string denoting the thresholds field in the database.
	FieldThresholds = "thresholds"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the modelversion in the database.
	Table = "model_versions"
)

// Columns holds all SQL columns for modelversion fields.
var Columns = []string{
	FieldID,
	FieldClassifierVersion,
	FieldEmbeddingModel,
	FieldLlmVersion,
	FieldDimension,
	FieldThresholds,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ModelVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClassifierVersion orders the results by the classifier_version field.
func ByClassifierVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassifierVersion, opts...).ToFunc()
}

// ByEmbeddingModel orders the results by the embedding_model field.
func ByEmbeddingModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingModel, opts...).ToFunc()
}

// ByLlmVersion orders the results by the llm_version field.
func ByLlmVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmVersion, opts...).ToFunc()
}

// ByDimension orders the results by the dimension field.
func ByDimension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimension, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
