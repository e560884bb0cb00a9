// Code generated by ent, DO NOT EDIT.

package crawleditem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the crawleditem type in the database.
	Label = "crawled_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldRawHTMLPath holds the string denoting the raw_html_path field in the database.
	FieldRawHTMLPath = "raw_html_path"
	// FieldScreenshotPath holds the string denoting the screenshot_path field in the database.
	FieldScreenshotPath = "screenshot_path"
	// FieldCleanText holds the string denoting the clean_text field in the database.
	FieldCleanText = "clean_text"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldLangConfidence holds the string denoting the lang_confidence field in the database.
	FieldLangConfidence = "lang_confidence"
	// FieldTranslit holds the string denoting the translit field in the database.
	FieldTranslit = "translit"
	// FieldHeuristicScore holds the string denoting the heuristic_score field in the database.
	FieldHeuristicScore = "heuristic_score"
	// FieldClassifierScore holds the string denoting the classifier_score field in the database.
	FieldClassifierScore = "classifier_score"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldImageHashes holds the string denoting the image_hashes field in the database.
	FieldImageHashes = "image_hashes"
	// FieldWhoisData holds the string denoting the whois_data field in the database.
	FieldWhoisData = "whois_data"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIngestedAt holds the string denoting the ingested_at field in the database.
	FieldIngestedAt = "ingested_at"
	// EdgeVectorRecord holds the string denoting the vector_record edge name in mutations.
	EdgeVectorRecord = "vector_record"
	// EdgeReviewEntries holds the string denoting the review_entries edge name in mutations.
	EdgeReviewEntries = "review_entries"
	// VectorRecordFieldID holds the string denoting the ID field of the VectorRecord.
	VectorRecordFieldID = "vector_id"
	// ReviewEntryFieldID holds the string denoting the ID field of the ReviewEntry.
	ReviewEntryFieldID = "review_id"
	// Table holds the table name of the crawleditem in the database.
	Table = "crawled_items"
	// VectorRecordTable is the table that holds the vector_record relation/edge.
	VectorRecordTable = "vector_records"
	// VectorRecordInverseTable is the table name for the VectorRecord entity.
	// It exists in this package in order to avoid circular dependency with the "vectorrecord" package.
	VectorRecordInverseTable = "vector_records"
	// VectorRecordColumn is the table column denoting the vector_record relation/edge.
	VectorRecordColumn = "doc_id"
	// ReviewEntriesTable is the table that holds the review_entries relation/edge.
	ReviewEntriesTable = "review_entries"
	// ReviewEntriesInverseTable is the table name for the ReviewEntry entity.
	// It exists in this package in order to avoid circular dependency with the "reviewentry" package.
	ReviewEntriesInverseTable = "review_entries"
	// ReviewEntriesColumn is the table column denoting the review_entries relation/edge.
	ReviewEntriesColumn = "doc_id"
)

// Columns holds all SQL columns for crawleditem fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldDomain,
	FieldRawHTMLPath,
	FieldScreenshotPath,
	FieldCleanText,
	FieldLanguage,
	FieldLangConfidence,
	FieldTranslit,
	FieldHeuristicScore,
	FieldClassifierScore,
	FieldLabel,
	FieldImageHashes,
	FieldWhoisData,
	FieldMetadata,
	FieldIngestedAt,
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
	// DefaultCleanText holds the default value on creation for the "clean_text" field.
	DefaultCleanText string
	// DefaultLangConfidence holds the default value on creation for the "lang_confidence" field.
	DefaultLangConfidence float64
	// DefaultTranslit holds the default value on creation for the "translit" field.
	DefaultTranslit bool
	// DefaultHeuristicScore holds the default value on creation for the "heuristic_score" field.
	DefaultHeuristicScore float64
	// DefaultIngestedAt holds the default value on creation for the "ingested_at" field.
	DefaultIngestedAt func() time.Time
)

// Language defines the type for the "language" enum field.
type Language string

// LanguageEn is the default value of the Language enum.
const DefaultLanguage = LanguageEn

// Language values.
const (
	LanguageHi Language = "hi"
	LanguageTa Language = "ta"
	LanguageKn Language = "kn"
	LanguageEn Language = "en"
)

func (l Language) String() string {
	return string(l)
}

// LanguageValidator is a validator for the "language" field enum values. It is called by the builders before save.
func LanguageValidator(l Language) error {
	switch l {
	case LanguageHi, LanguageTa, LanguageKn, LanguageEn:
		return nil
	default:
		return fmt.Errorf("crawleditem: invalid enum value for language field: %q", l)
	}
}

// Label defines the type for the "label" enum field.
type Label string

// LabelPending is the default value of the Label enum.
const DefaultLabel = LabelPending

// Label values.
const (
	LabelPending     Label = "pending"
	LabelBenign      Label = "benign"
	LabelScam        Label = "scam"
	LabelNeedsReview Label = "needs_review"
)

func (l Label) String() string {
	return string(l)
}

// LabelValidator is a validator for the "label" field enum values. It is called by the builders before save.
func LabelValidator(l Label) error {
	switch l {
	case LabelPending, LabelBenign, LabelScam, LabelNeedsReview:
		return nil
	default:
		return fmt.Errorf("crawleditem: invalid enum value for label field: %q", l)
	}
}

// OrderOption defines the ordering options for the CrawledItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByRawHTMLPath orders the results by the raw_html_path field.
func ByRawHTMLPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawHTMLPath, opts...).ToFunc()
}

// ByScreenshotPath orders the results by the screenshot_path field.
func ByScreenshotPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreenshotPath, opts...).ToFunc()
}

// ByCleanText orders the results by the clean_text field.
func ByCleanText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCleanText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByLangConfidence orders the results by the lang_confidence field.
func ByLangConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLangConfidence, opts...).ToFunc()
}

// ByTranslit orders the results by the translit field.
func ByTranslit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslit, opts...).ToFunc()
}

// ByHeuristicScore orders the results by the heuristic_score field.
func ByHeuristicScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeuristicScore, opts...).ToFunc()
}

// ByClassifierScore orders the results by the classifier_score field.
func ByClassifierScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassifierScore, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByIngestedAt orders the results by the ingested_at field.
func ByIngestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestedAt, opts...).ToFunc()
}

// ByVectorRecordField orders the results by vector_record field.
func ByVectorRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVectorRecordStep(), sql.OrderByField(field, opts...))
	}
}

// ByReviewEntriesCount orders the results by review_entries count.
func ByReviewEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReviewEntriesStep(), opts...)
	}
}

// ByReviewEntries orders the results by review_entries terms.
func ByReviewEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVectorRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VectorRecordInverseTable, VectorRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, VectorRecordTable, VectorRecordColumn),
	)
}
func newReviewEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewEntriesInverseTable, ReviewEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReviewEntriesTable, ReviewEntriesColumn),
	)
}
