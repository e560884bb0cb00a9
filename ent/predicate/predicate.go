// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditRecord is the predicate function for auditrecord builders.
type AuditRecord func(*sql.Selector)

// CrawledItem is the predicate function for crawleditem builders.
type CrawledItem func(*sql.Selector)

// ModelVersion is the predicate function for modelversion builders.
type ModelVersion func(*sql.Selector)

// ReviewEntry is the predicate function for reviewentry builders.
type ReviewEntry func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// VectorRecord is the predicate function for vectorrecord builders.
type VectorRecord func(*sql.Selector)
