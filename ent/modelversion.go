// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/factforge/factforge/ent/modelversion"
)

// ModelVersion is the model entity for the ModelVersion schema.
type ModelVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClassifierVersion holds the value of the "classifier_version" field.
	ClassifierVersion string `json:"classifier_version,omitempty"`
	// EmbeddingModel holds the value of the "embedding_model" field.
	EmbeddingModel string `json:"embedding_model,omitempty"`
	// LlmVersion holds the value of the "llm_version" field.
	LlmVersion string `json:"llm_version,omitempty"`
	// Embedding dimension; fixed for the life of the bundle
	Dimension int `json:"dimension,omitempty"`
	// Per-language auto-label thresholds in [0,1], keyed hi/ta/kn/en
	Thresholds map[string]float64 `json:"thresholds,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelversion.FieldThresholds:
			values[i] = new([]byte)
		case modelversion.FieldIsActive:
			values[i] = new(sql.NullBool)
		case modelversion.FieldDimension:
			values[i] = new(sql.NullInt64)
		case modelversion.FieldID, modelversion.FieldClassifierVersion, modelversion.FieldEmbeddingModel, modelversion.FieldLlmVersion:
			values[i] = new(sql.NullString)
		case modelversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelVersion fields.
func (_m *ModelVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modelversion.FieldClassifierVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classifier_version", values[i])
			} else if value.Valid {
				_m.ClassifierVersion = value.String
			}
		case modelversion.FieldEmbeddingModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_model", values[i])
			} else if value.Valid {
				_m.EmbeddingModel = value.String
			}
		case modelversion.FieldLlmVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_version", values[i])
			} else if value.Valid {
				_m.LlmVersion = value.String
			}
		case modelversion.FieldDimension:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dimension", values[i])
			} else if value.Valid {
				_m.Dimension = int(value.Int64)
			}
		case modelversion.FieldThresholds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thresholds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Thresholds); err != nil {
					return fmt.Errorf("unmarshal field thresholds: %w", err)
				}
			}
		case modelversion.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case modelversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ModelVersion.
// This includes values selected through modifiers, order, etc.
func (_m *ModelVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelVersion.
// Note that you need to call ModelVersion.Unwrap() before calling this method if this ModelVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelVersion) Update() *ModelVersionUpdateOne {
	return NewModelVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelVersion) Unwrap() *ModelVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelVersion) String() string {
	var builder strings.Builder
	builder.WriteString("ModelVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("classifier_version=")
	builder.WriteString(_m.ClassifierVersion)
	builder.WriteString(", ")
	builder.WriteString("embedding_model=")
	builder.WriteString(_m.EmbeddingModel)
	builder.WriteString(", ")
	builder.WriteString("llm_version=")
	builder.WriteString(_m.LlmVersion)
	builder.WriteString(", ")
	builder.WriteString("dimension=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dimension))
	builder.WriteString(", ")
	builder.WriteString("thresholds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Thresholds))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelVersions is a parsable slice of ModelVersion.
type ModelVersions []*ModelVersion
