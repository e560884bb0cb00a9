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

// VectorRecord is the model entity for the VectorRecord schema.
type VectorRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// Embedding model identifier the vector was produced with
	EmbeddingID string `json:"embedding_id,omitempty"`
	// Opaque handle into the vector index
	ExternalID string `json:"external_id,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VectorRecordQuery when eager-loading is set.
	Edges        VectorRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VectorRecordEdges holds the relations/edges for other nodes in the graph.
type VectorRecordEdges struct {
	// Doc holds the value of the doc edge.
	Doc *CrawledItem `json:"doc,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocOrErr returns the Doc value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VectorRecordEdges) DocOrErr() (*CrawledItem, error) {
	if e.Doc != nil {
		return e.Doc, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crawleditem.Label}
	}
	return nil, &NotLoadedError{edge: "doc"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VectorRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vectorrecord.FieldMetadata:
			values[i] = new([]byte)
		case vectorrecord.FieldID, vectorrecord.FieldDocID, vectorrecord.FieldEmbeddingID, vectorrecord.FieldExternalID:
			values[i] = new(sql.NullString)
		case vectorrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VectorRecord fields.
func (_m *VectorRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vectorrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vectorrecord.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case vectorrecord.FieldEmbeddingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_id", values[i])
			} else if value.Valid {
				_m.EmbeddingID = value.String
			}
		case vectorrecord.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case vectorrecord.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case vectorrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VectorRecord.
// This includes values selected through modifiers, order, etc.
func (_m *VectorRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoc queries the "doc" edge of the VectorRecord entity.
func (_m *VectorRecord) QueryDoc() *CrawledItemQuery {
	return NewVectorRecordClient(_m.config).QueryDoc(_m)
}

// Update returns a builder for updating this VectorRecord.
// Note that you need to call VectorRecord.Unwrap() before calling this method if this VectorRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VectorRecord) Update() *VectorRecordUpdateOne {
	return NewVectorRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VectorRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VectorRecord) Unwrap() *VectorRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VectorRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VectorRecord) String() string {
	var builder strings.Builder
	builder.WriteString("VectorRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("embedding_id=")
	builder.WriteString(_m.EmbeddingID)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VectorRecords is a parsable slice of VectorRecord.
type VectorRecords []*VectorRecord
