// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/user"
)

// ReviewEntry is the model entity for the ReviewEntry schema.
type ReviewEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// AssignedTo holds the value of the "assigned_to" field.
	AssignedTo *string `json:"assigned_to,omitempty"`
	// Status holds the value of the "status" field.
	Status reviewentry.Status `json:"status,omitempty"`
	// Queue ordering: priority desc, then created_at asc
	Priority int `json:"priority,omitempty"`
	// Note holds the value of the "note" field.
	Note *string `json:"note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReviewEntryQuery when eager-loading is set.
	Edges        ReviewEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReviewEntryEdges holds the relations/edges for other nodes in the graph.
type ReviewEntryEdges struct {
	// Doc holds the value of the doc edge.
	Doc *CrawledItem `json:"doc,omitempty"`
	// Assignee holds the value of the assignee edge.
	Assignee *User `json:"assignee,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocOrErr returns the Doc value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEntryEdges) DocOrErr() (*CrawledItem, error) {
	if e.Doc != nil {
		return e.Doc, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crawleditem.Label}
	}
	return nil, &NotLoadedError{edge: "doc"}
}

// AssigneeOrErr returns the Assignee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEntryEdges) AssigneeOrErr() (*User, error) {
	if e.Assignee != nil {
		return e.Assignee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assignee"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewentry.FieldPriority:
			values[i] = new(sql.NullInt64)
		case reviewentry.FieldID, reviewentry.FieldDocID, reviewentry.FieldAssignedTo, reviewentry.FieldStatus, reviewentry.FieldNote:
			values[i] = new(sql.NullString)
		case reviewentry.FieldCreatedAt, reviewentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEntry fields.
func (_m *ReviewEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reviewentry.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case reviewentry.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(string)
				*_m.AssignedTo = value.String
			}
		case reviewentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reviewentry.Status(value.String)
			}
		case reviewentry.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case reviewentry.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		case reviewentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reviewentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoc queries the "doc" edge of the ReviewEntry entity.
func (_m *ReviewEntry) QueryDoc() *CrawledItemQuery {
	return NewReviewEntryClient(_m.config).QueryDoc(_m)
}

// QueryAssignee queries the "assignee" edge of the ReviewEntry entity.
func (_m *ReviewEntry) QueryAssignee() *UserQuery {
	return NewReviewEntryClient(_m.config).QueryAssignee(_m)
}

// Update returns a builder for updating this ReviewEntry.
// Note that you need to call ReviewEntry.Unwrap() before calling this method if this ReviewEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEntry) Update() *ReviewEntryUpdateOne {
	return NewReviewEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEntry) Unwrap() *ReviewEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEntries is a parsable slice of ReviewEntry.
type ReviewEntries []*ReviewEntry
