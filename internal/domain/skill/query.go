package skill

import (
	"sort"
	"strings"
)

type Field int

const (
	FieldID Field = iota
	FieldName
	FieldCategory
	FieldProficiencyLevel
	FieldYearsExperience
)

type Order struct {
	Field Field
	Desc  bool
}

func Asc(f Field) Order  { return Order{Field: f} }
func Desc(f Field) Order { return Order{Field: f, Desc: true} }

// Filter selects records. Zero-valued fields do not constrain the result.
type Filter struct {
	// Category matches case-insensitively and exactly.
	Category string
	// MinProficiency excludes records without a proficiency level.
	MinProficiency *int
	// NameContains is a case-insensitive substring match on the name.
	NameContains string
}

// Query is the single shape every listing is expressed in: a filter, an
// ordering and an optional row limit. Stores always break remaining ties by
// ascending id and sort absent values last.
type Query struct {
	Filter  Filter
	OrderBy []Order
	Limit   int
}

func All() Query {
	return Query{}
}

func ByCategory(category string) Query {
	return Query{Filter: Filter{Category: category}}
}

func ForBubbles(minProficiency int) Query {
	return Query{
		Filter:  Filter{MinProficiency: &minProficiency},
		OrderBy: []Order{Asc(FieldCategory), Desc(FieldProficiencyLevel)},
	}
}

func OrderedByProficiency() Query {
	return Query{OrderBy: []Order{Desc(FieldProficiencyLevel), Asc(FieldName)}}
}

func Top(limit int) Query {
	return Query{
		OrderBy: []Order{Desc(FieldProficiencyLevel), Desc(FieldYearsExperience)},
		Limit:   limit,
	}
}

func NameContains(term string) Query {
	return Query{Filter: Filter{NameContains: term}}
}

func (f Filter) Matches(s Skill) bool {
	if f.Category != "" && !strings.EqualFold(s.Category, f.Category) {
		return false
	}
	if f.MinProficiency != nil {
		if s.ProficiencyLevel == nil || *s.ProficiencyLevel < *f.MinProficiency {
			return false
		}
	}
	if f.NameContains != "" {
		if !strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.NameContains)) {
			return false
		}
	}
	return true
}

// Compare orders a before b (<0), after b (>0) or reports a tie (0) under the
// given ordering, falling back to ascending id.
func Compare(a, b Skill, orderBy []Order) int {
	for _, o := range orderBy {
		c := compareField(a, b, o)
		if c != 0 {
			return c
		}
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// compareField compares text bytewise, so uppercase sorts before lowercase.
// The Postgres store orders with COLLATE "C" to match.
func compareField(a, b Skill, o Order) int {
	switch o.Field {
	case FieldID:
		return direction(cmpInt64(a.ID, b.ID), o.Desc)
	case FieldName:
		return direction(strings.Compare(a.Name, b.Name), o.Desc)
	case FieldCategory:
		return direction(strings.Compare(a.Category, b.Category), o.Desc)
	case FieldProficiencyLevel:
		return compareOptional(a.ProficiencyLevel, b.ProficiencyLevel, o.Desc)
	case FieldYearsExperience:
		return compareOptional(a.YearsExperience, b.YearsExperience, o.Desc)
	default:
		return 0
	}
}

// compareOptional puts nil after any value in both directions.
func compareOptional(a, b *int, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return direction(cmpInt64(int64(*a), int64(*b)), desc)
}

func direction(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Apply runs q over an in-memory collection. The input slice is not modified.
func Apply(items []Skill, q Query) []Skill {
	out := make([]Skill, 0, len(items))
	for _, it := range items {
		if q.Filter.Matches(it) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j], q.OrderBy) < 0
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
