package postgres

import (
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection names double as table names.
const (
	collectionDishes           = "dishes"
	collectionSubscriptions    = "subscriptions"
	collectionTastePreferences = "taste_preferences"
	collectionProfiles         = "profiles"
	collectionDevices          = "user_devices"
)

// Scan orders reproducing each collection's insertion order.
const (
	insertionOrder  = "created_at ASC, id ASC"
	preferenceOrder = "updated_at ASC, user_id ASC"
)

type columnSet map[string]struct{}

func columns(names ...string) columnSet {
	set := make(columnSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

var (
	dishColumns = columns(
		repository.FieldID, repository.FieldUserID, repository.FieldRestaurant,
		repository.FieldPlace, repository.FieldOccasion,
	)
	subscriptionColumns = columns(
		repository.FieldID, repository.FieldUserID,
		repository.FieldSubscribedToUser, repository.FieldSubscribedToRestaurant,
	)
	tastePreferenceColumns = columns(repository.FieldUserID, repository.FieldFavoriteCuisine)
	profileColumns         = columns(repository.FieldID, repository.FieldUsername)
)

// applyPredicate translates pred into WHERE expressions on db. Column names
// are checked against allowed before they reach SQL.
func applyPredicate(db *gorm.DB, allowed columnSet, pred repository.Predicate) (*gorm.DB, error) {
	exprs := make([]clause.Expression, 0, len(pred))
	for _, c := range pred {
		expr, err := clauseExpression(allowed, c)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 0 {
		return db, nil
	}

	return db.Clauses(clause.Where{Exprs: exprs}), nil
}

func clauseExpression(allowed columnSet, c repository.Clause) (clause.Expression, error) {
	if _, ok := allowed[c.Field]; !ok {
		return nil, errors.Wrapf(repository.ErrUnknownField, "%q", c.Field)
	}
	column := clause.Column{Name: c.Field}

	switch c.Op {
	case repository.OpEq:
		return clause.Eq{Column: column, Value: c.Value}, nil
	case repository.OpNe:
		return clause.Neq{Column: column, Value: c.Value}, nil
	case repository.OpIn:
		values, ok := c.Value.([]any)
		if !ok {
			return nil, errors.Errorf("in clause on %q needs []any, got %T", c.Field, c.Value)
		}

		return clause.IN{Column: column, Values: values}, nil
	case repository.OpContains:
		element, ok := c.Value.(string)
		if !ok {
			return nil, errors.Errorf("contains clause on %q needs string, got %T", c.Field, c.Value)
		}

		return clause.Expr{SQL: "? @> ?", Vars: []any{column, pq.StringArray{element}}}, nil
	case repository.OpILike:
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{column, c.Value}}, nil
	case repository.OpNotNull:
		return clause.Expr{SQL: "? IS NOT NULL", Vars: []any{column}}, nil
	default:
		return nil, errors.Wrapf(repository.ErrUnsupportedOp, "%q", c.Op)
	}
}

// scanQuery prepares an ordered, optionally limited scan over one collection.
func scanQuery(db *gorm.DB, allowed columnSet, order string, pred repository.Predicate, limit int) (*gorm.DB, error) {
	query, err := applyPredicate(db, allowed, pred)
	if err != nil {
		return nil, err
	}
	query = query.Order(order)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return query, nil
}
