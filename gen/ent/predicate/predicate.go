// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractedData is the predicate function for extracteddata builders.
type ExtractedData func(*sql.Selector)
