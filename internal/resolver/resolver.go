// Package resolver answers compatibility queries over a loaded catalog.
// All queries are pure functions of the catalog and the caller's current
// selections; nothing here mutates state or returns errors. Unknown
// technologies, unknown categories, and genuinely empty candidate sets are
// all reported the same way: an empty result.
package resolver

import (
	"github.com/stackscope/core/internal/models"
	"github.com/stackscope/core/internal/parser"
)

// Resolver holds an immutable catalog and its derived index. A single
// Resolver is safe for concurrent use.
type Resolver struct {
	catalog *models.Catalog
	index   *models.Index
}

// New builds a Resolver for the given catalog. The index is derived once
// here and reused for every query.
func New(catalog *models.Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
		index:   parser.BuildIndex(catalog),
	}
}

// Catalog returns the underlying catalog.
func (r *Resolver) Catalog() *models.Catalog {
	return r.catalog
}

// AllIn returns every technology ID in the given category.
func (r *Resolver) AllIn(category string) models.IDSet {
	return r.catalog.IDsIn(category)
}

// Compatible returns the IDs in target compatible with the given technology,
// using the symmetrized index. The result is a copy the caller may keep.
func (r *Resolver) Compatible(category, id, target string) models.IDSet {
	return r.index.Compatible(category, id, target).Clone()
}

// Filter returns the IDs in target that remain valid under the given
// selections (category -> selected ID).
//
// Only constraining selections participate: a selection narrows the result
// if and only if its category is related to target, meaning some technology
// somewhere in the catalog declares an edge between the two categories. The
// result is the intersection of the compatible sets of every constraining
// selection; with no constraining selection the whole category is returned.
// A selection in the target category itself never constrains it.
func (r *Resolver) Filter(selections map[string]string, target string) models.IDSet {
	result := r.AllIn(target)

	for category, id := range selections {
		if category == target || id == "" {
			continue
		}
		if !r.index.RelatedPair(category, target) {
			continue
		}
		result = result.Intersect(r.index.Compatible(category, id, target))
	}

	return result
}

// Options dispatches a filter request to the right query: the database
// system / hosting / ORM categories go through their specializations, which
// read the databases, databaseHosting, orms, and databaseType selection
// keys; every other category goes through the generic Filter.
func (r *Resolver) Options(selections map[string]string, target string) models.IDSet {
	switch target {
	case models.CategoryDatabases:
		return r.FilterDatabaseSystems(DatabaseSelectionFromMap(selections))
	case models.CategoryDatabaseHosting:
		return r.FilterDatabaseHosting(DatabaseSelectionFromMap(selections))
	case models.CategoryOrms:
		return r.FilterOrmOptions(DatabaseSelectionFromMap(selections))
	default:
		return r.Filter(selections, target)
	}
}
