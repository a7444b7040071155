package models

// TechKey identifies a technology by category and ID.
type TechKey struct {
	Category string
	ID       string
}

// CategoryPair is an unordered pair of category names, stored in sorted
// order; use PairOf to construct.
type CategoryPair struct {
	A string
	B string
}

// PairOf returns the normalized pair for two category names.
func PairOf(a, b string) CategoryPair {
	if b < a {
		a, b = b, a
	}
	return CategoryPair{A: a, B: b}
}

// Index is the derived, read-only compatibility lookup built once per
// catalog. Edges holds the symmetric closure of every declared compatibility
// edge; Related records which category pairs have at least one edge declared
// between them anywhere in the catalog, in either direction.
//
// After construction the index is never mutated and is safe for concurrent
// readers.
type Index struct {
	Edges   map[TechKey]map[string]IDSet
	Related map[CategoryPair]bool
}

// Compatible returns the IDs in target compatible with the given technology.
// Unknown technologies, categories, and undeclared relations all yield an
// empty set; the caller must not mutate the result.
func (ix *Index) Compatible(category, id, target string) IDSet {
	if ix == nil {
		return IDSet{}
	}
	byTarget, ok := ix.Edges[TechKey{Category: category, ID: id}]
	if !ok {
		return IDSet{}
	}
	ids, ok := byTarget[target]
	if !ok {
		return IDSet{}
	}
	return ids
}

// RelatedPair reports whether any technology declares a compatibility edge
// between the two categories, in either direction.
func (ix *Index) RelatedPair(a, b string) bool {
	if ix == nil {
		return false
	}
	return ix.Related[PairOf(a, b)]
}
