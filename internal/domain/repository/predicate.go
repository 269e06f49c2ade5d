// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"strings"

	"foodiecircle/internal/errors"
)

// Predicate errors reported by store implementations, wrapped in a StoreError.
var (
	// ErrUnknownField is returned when a clause names a field outside the collection's whitelist.
	ErrUnknownField = errors.New("unknown predicate field")
	// ErrUnsupportedOp is returned for an operator the store cannot evaluate.
	ErrUnsupportedOp = errors.New("unsupported predicate operator")
)

// Op is a comparison a Clause applies to one field.
type Op string

const (
	// OpEq matches when the field equals Value.
	OpEq Op = "eq"
	// OpNe matches when the field is set and differs from Value.
	OpNe Op = "ne"
	// OpIn matches when the field equals any element of Value ([]any).
	OpIn Op = "in"
	// OpContains matches when the array field holds Value as an element.
	OpContains Op = "contains"
	// OpILike matches a case-insensitive LIKE pattern held in Value.
	OpILike Op = "ilike"
	// OpNotNull matches when the field is set. Value is ignored.
	OpNotNull Op = "not_null"
)

// Column names shared with the external store. They are part of the storage
// contract and must not be renamed.
const (
	FieldID                     = "id"
	FieldUserID                 = "user_id"
	FieldRestaurant             = "restaurant"
	FieldPlace                  = "place"
	FieldOccasion               = "occasion"
	FieldFavoriteCuisine        = "favorite_cuisine"
	FieldSubscribedToUser       = "subscribed_to_user_id"
	FieldSubscribedToRestaurant = "subscribed_to_restaurant"
	FieldUsername               = "username"
)

// Clause is a single field comparison.
type Clause struct {
	Field string
	Op    Op
	Value any
}

// Predicate is a conjunction of clauses. The empty predicate matches every record.
type Predicate []Clause

// Where builds a predicate from clauses.
func Where(clauses ...Clause) Predicate {
	return Predicate(clauses)
}

// And returns a new predicate with extra clauses appended; p is left untouched.
func (p Predicate) And(clauses ...Clause) Predicate {
	out := make(Predicate, 0, len(p)+len(clauses))
	out = append(out, p...)

	return append(out, clauses...)
}

// Eq matches field == value.
func Eq(field string, value any) Clause {
	return Clause{Field: field, Op: OpEq, Value: value}
}

// Ne matches field != value. Null fields never match.
func Ne(field string, value any) Clause {
	return Clause{Field: field, Op: OpNe, Value: value}
}

// In matches field against any of values. An empty set matches nothing.
func In[T any](field string, values []T) Clause {
	set := make([]any, len(values))
	for i, v := range values {
		set[i] = v
	}

	return Clause{Field: field, Op: OpIn, Value: set}
}

// Contains matches array fields holding element.
func Contains(field, element string) Clause {
	return Clause{Field: field, Op: OpContains, Value: element}
}

// ILike matches field against a raw LIKE pattern.
func ILike(field, pattern string) Clause {
	return Clause{Field: field, Op: OpILike, Value: pattern}
}

// ILikeSubstring matches field containing text anywhere, ignoring case.
// Wildcards inside text are matched literally.
func ILikeSubstring(field, text string) Clause {
	return ILike(field, "%"+EscapeLike(text)+"%")
}

// NotNull matches records where field is set.
func NotNull(field string) Clause {
	return Clause{Field: field, Op: OpNotNull}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters using backslash, the PostgreSQL default escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
