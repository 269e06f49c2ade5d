package memory

import (
	"fmt"
	"slices"
	"strings"

	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
)

type fieldSet map[string]struct{}

func fields(names ...string) fieldSet {
	set := make(fieldSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

// validate rejects unknown fields and operators before any record is read,
// so an empty collection reports them the same way a full one does.
func validate(pred repository.Predicate, allowed fieldSet) error {
	for _, c := range pred {
		if _, ok := allowed[c.Field]; !ok {
			return errors.Wrapf(repository.ErrUnknownField, "%q", c.Field)
		}
		switch c.Op {
		case repository.OpEq, repository.OpNe, repository.OpIn,
			repository.OpContains, repository.OpILike, repository.OpNotNull:
		default:
			return errors.Wrapf(repository.ErrUnsupportedOp, "%q", c.Op)
		}
	}

	return nil
}

// fieldFunc reads a named field from a record. known is false for fields the
// collection does not have; present is false for null values.
type fieldFunc[T any] func(record T, field string) (value any, present bool, known bool)

func matches[T any](record T, pred repository.Predicate, field fieldFunc[T]) (bool, error) {
	for _, c := range pred {
		value, present, known := field(record, c.Field)
		if !known {
			return false, errors.Wrapf(repository.ErrUnknownField, "%q", c.Field)
		}

		ok, err := matchClause(c, value, present)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func matchClause(c repository.Clause, value any, present bool) (bool, error) {
	switch c.Op {
	case repository.OpNotNull:
		return present, nil
	case repository.OpEq:
		return present && text(value) == text(c.Value), nil
	case repository.OpNe:
		return present && text(value) != text(c.Value), nil
	case repository.OpIn:
		set, ok := c.Value.([]any)
		if !ok {
			return false, errors.Errorf("in clause on %q needs []any, got %T", c.Field, c.Value)
		}
		if !present {
			return false, nil
		}
		want := text(value)

		return slices.ContainsFunc(set, func(v any) bool { return text(v) == want }), nil
	case repository.OpContains:
		tags, ok := value.([]string)
		if !ok {
			return false, errors.Errorf("contains clause on non-array field %q", c.Field)
		}

		return slices.Contains(tags, text(c.Value)), nil
	case repository.OpILike:
		pattern, ok := c.Value.(string)
		if !ok {
			return false, errors.Errorf("ilike clause on %q needs string, got %T", c.Field, c.Value)
		}

		return present && likeMatch(strings.ToLower(text(value)), strings.ToLower(pattern)), nil
	default:
		return false, errors.Wrapf(repository.ErrUnsupportedOp, "%q", c.Op)
	}
}

func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// likeMatch implements SQL LIKE with % and _ wildcards and backslash escapes.
func likeMatch(s, pattern string) bool {
	str, pat := []rune(s), []rune(pattern)

	var match func(i, j int) bool
	match = func(i, j int) bool {
		for j < len(pat) {
			switch pat[j] {
			case '%':
				for j < len(pat) && pat[j] == '%' {
					j++
				}
				if j == len(pat) {
					return true
				}
				for k := i; k <= len(str); k++ {
					if match(k, j) {
						return true
					}
				}

				return false
			case '_':
				if i >= len(str) {
					return false
				}
				i++
				j++
			case '\\':
				if j+1 < len(pat) {
					j++
				}
				fallthrough
			default:
				if i >= len(str) || str[i] != pat[j] {
					return false
				}
				i++
				j++
			}
		}

		return i == len(str)
	}

	return match(0, 0)
}
