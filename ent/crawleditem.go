// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// CrawledItem is the model entity for the CrawledItem schema.
type CrawledItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Canonical URL; re-enrichment replaces contents in place
	URL string `json:"url,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Path under the storage root, named by MD5 of the URL
	RawHTMLPath *string `json:"raw_html_path,omitempty"`
	// ScreenshotPath holds the value of the "screenshot_path" field.
	ScreenshotPath *string `json:"screenshot_path,omitempty"`
	// CleanText holds the value of the "clean_text" field.
	CleanText string `json:"clean_text,omitempty"`
	// Language holds the value of the "language" field.
	Language crawleditem.Language `json:"language,omitempty"`
	// Detector confidence in [0,1]
	LangConfidence float64 `json:"lang_confidence,omitempty"`
	// Romanized Hindi markers found in English-detected text
	Translit bool `json:"translit,omitempty"`
	// Rule-based fraud signal in [0,100]
	HeuristicScore float64 `json:"heuristic_score,omitempty"`
	// Learned scam probability in [0,1]; nil until classified
	ClassifierScore *float64 `json:"classifier_score,omitempty"`
	// Label holds the value of the "label" field.
	Label crawleditem.Label `json:"label,omitempty"`
	// Perceptual hashes of the screenshot: average, perception, difference, wavelet
	ImageHashes []string `json:"image_hashes,omitempty"`
	// WhoisData holds the value of the "whois_data" field.
	WhoisData map[string]interface{} `json:"whois_data,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt time.Time `json:"ingested_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CrawledItemQuery when eager-loading is set.
	Edges        CrawledItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CrawledItemEdges holds the relations/edges for other nodes in the graph.
type CrawledItemEdges struct {
	// VectorRecord holds the value of the vector_record edge.
	VectorRecord *VectorRecord `json:"vector_record,omitempty"`
	// ReviewEntries holds the value of the review_entries edge.
	ReviewEntries []*ReviewEntry `json:"review_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VectorRecordOrErr returns the VectorRecord value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CrawledItemEdges) VectorRecordOrErr() (*VectorRecord, error) {
	if e.VectorRecord != nil {
		return e.VectorRecord, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vectorrecord.Label}
	}
	return nil, &NotLoadedError{edge: "vector_record"}
}

// ReviewEntriesOrErr returns the ReviewEntries value or an error if the edge
// was not loaded in eager-loading.
func (e CrawledItemEdges) ReviewEntriesOrErr() ([]*ReviewEntry, error) {
	if e.loadedTypes[1] {
		return e.ReviewEntries, nil
	}
	return nil, &NotLoadedError{edge: "review_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CrawledItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crawleditem.FieldImageHashes, crawleditem.FieldWhoisData, crawleditem.FieldMetadata:
			values[i] = new([]byte)
		case crawleditem.FieldTranslit:
			values[i] = new(sql.NullBool)
		case crawleditem.FieldLangConfidence, crawleditem.FieldHeuristicScore, crawleditem.FieldClassifierScore:
			values[i] = new(sql.NullFloat64)
		case crawleditem.FieldID, crawleditem.FieldURL, crawleditem.FieldDomain, crawleditem.FieldRawHTMLPath, crawleditem.FieldScreenshotPath, crawleditem.FieldCleanText, crawleditem.FieldLanguage, crawleditem.FieldLabel:
			values[i] = new(sql.NullString)
		case crawleditem.FieldIngestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CrawledItem fields.
func (_m *CrawledItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crawleditem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case crawleditem.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case crawleditem.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case crawleditem.FieldRawHTMLPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_html_path", values[i])
			} else if value.Valid {
				_m.RawHTMLPath = new(string)
				*_m.RawHTMLPath = value.String
			}
		case crawleditem.FieldScreenshotPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field screenshot_path", values[i])
			} else if value.Valid {
				_m.ScreenshotPath = new(string)
				*_m.ScreenshotPath = value.String
			}
		case crawleditem.FieldCleanText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clean_text", values[i])
			} else if value.Valid {
				_m.CleanText = value.String
			}
		case crawleditem.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = crawleditem.Language(value.String)
			}
		case crawleditem.FieldLangConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lang_confidence", values[i])
			} else if value.Valid {
				_m.LangConfidence = value.Float64
			}
		case crawleditem.FieldTranslit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field translit", values[i])
			} else if value.Valid {
				_m.Translit = value.Bool
			}
		case crawleditem.FieldHeuristicScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field heuristic_score", values[i])
			} else if value.Valid {
				_m.HeuristicScore = value.Float64
			}
		case crawleditem.FieldClassifierScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field classifier_score", values[i])
			} else if value.Valid {
				_m.ClassifierScore = new(float64)
				*_m.ClassifierScore = value.Float64
			}
		case crawleditem.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = crawleditem.Label(value.String)
			}
		case crawleditem.FieldImageHashes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_hashes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImageHashes); err != nil {
					return fmt.Errorf("unmarshal field image_hashes: %w", err)
				}
			}
		case crawleditem.FieldWhoisData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field whois_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WhoisData); err != nil {
					return fmt.Errorf("unmarshal field whois_data: %w", err)
				}
			}
		case crawleditem.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case crawleditem.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CrawledItem.
// This includes values selected through modifiers, order, etc.
func (_m *CrawledItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVectorRecord queries the "vector_record" edge of the CrawledItem entity.
func (_m *CrawledItem) QueryVectorRecord() *VectorRecordQuery {
	return NewCrawledItemClient(_m.config).QueryVectorRecord(_m)
}

// QueryReviewEntries queries the "review_entries" edge of the CrawledItem entity.
func (_m *CrawledItem) QueryReviewEntries() *ReviewEntryQuery {
	return NewCrawledItemClient(_m.config).QueryReviewEntries(_m)
}

// Update returns a builder for updating this CrawledItem.
// Note that you need to call CrawledItem.Unwrap() before calling this method if this CrawledItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CrawledItem) Update() *CrawledItemUpdateOne {
	return NewCrawledItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CrawledItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CrawledItem) Unwrap() *CrawledItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CrawledItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CrawledItem) String() string {
	var builder strings.Builder
	builder.WriteString("CrawledItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	if v := _m.RawHTMLPath; v != nil {
		builder.WriteString("raw_html_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ScreenshotPath; v != nil {
		builder.WriteString("screenshot_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("clean_text=")
	builder.WriteString(_m.CleanText)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(fmt.Sprintf("%v", _m.Language))
	builder.WriteString(", ")
	builder.WriteString("lang_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.LangConfidence))
	builder.WriteString(", ")
	builder.WriteString("translit=")
	builder.WriteString(fmt.Sprintf("%v", _m.Translit))
	builder.WriteString(", ")
	builder.WriteString("heuristic_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeuristicScore))
	builder.WriteString(", ")
	if v := _m.ClassifierScore; v != nil {
		builder.WriteString("classifier_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(fmt.Sprintf("%v", _m.Label))
	builder.WriteString(", ")
	builder.WriteString("image_hashes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageHashes))
	builder.WriteString(", ")
	builder.WriteString("whois_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhoisData))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CrawledItems is a parsable slice of CrawledItem.
type CrawledItems []*CrawledItem
