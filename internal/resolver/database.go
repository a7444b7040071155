package resolver

import (
	"github.com/stackscope/core/internal/models"
)

// DatabaseSelection is the three-way selection state of the database system /
// hosting / ORM triangle, plus the database type axis. Empty fields mean
// unselected.
type DatabaseSelection struct {
	Type    string
	System  string
	Hosting string
	ORM     string
}

// DatabaseSelectionFromMap extracts the triangle's axes from a generic
// selections map.
func DatabaseSelectionFromMap(selections map[string]string) DatabaseSelection {
	return DatabaseSelection{
		Type:    selections[models.SelectionDatabaseType],
		System:  selections[models.CategoryDatabases],
		Hosting: selections[models.CategoryDatabaseHosting],
		ORM:     selections[models.CategoryOrms],
	}
}

// FilterDatabaseSystems returns the database systems valid under the given
// selection. The type axis filters on the system's declared type attribute;
// hosting and ORM narrow through the symmetrized index, so a relation
// declared from either side is honored.
func (r *Resolver) FilterDatabaseSystems(sel DatabaseSelection) models.IDSet {
	result := r.AllIn(models.CategoryDatabases)

	if sel.Type != "" {
		byType := models.NewIDSet()
		for id, tech := range r.catalog.Technologies[models.CategoryDatabases] {
			if tech.Type == sel.Type {
				byType.Add(id)
			}
		}
		result = result.Intersect(byType)
	}

	if sel.Hosting != "" {
		result = result.Intersect(r.index.Compatible(models.CategoryDatabaseHosting, sel.Hosting, models.CategoryDatabases))
	}

	if sel.ORM != "" {
		result = result.Intersect(r.index.Compatible(models.CategoryOrms, sel.ORM, models.CategoryDatabases))
	}

	return result
}

// FilterDatabaseHosting returns the hosting options valid under the given
// selection. Precedence: a selected system wins outright and its declared
// hosting list is returned as-is, overriding anything derivable from type or
// ORM; otherwise a selected type yields the union over all systems of that
// type; otherwise a selected ORM yields the union over all systems
// compatible with it; otherwise every hosting option.
func (r *Resolver) FilterDatabaseHosting(sel DatabaseSelection) models.IDSet {
	switch {
	case sel.System != "":
		return r.Compatible(models.CategoryDatabases, sel.System, models.CategoryDatabaseHosting)

	case sel.Type != "":
		result := models.NewIDSet()
		for id, tech := range r.catalog.Technologies[models.CategoryDatabases] {
			if tech.Type == sel.Type {
				result = result.Union(r.index.Compatible(models.CategoryDatabases, id, models.CategoryDatabaseHosting))
			}
		}
		return result

	case sel.ORM != "":
		result := models.NewIDSet()
		for id := range r.index.Compatible(models.CategoryOrms, sel.ORM, models.CategoryDatabases) {
			result = result.Union(r.index.Compatible(models.CategoryDatabases, id, models.CategoryDatabaseHosting))
		}
		return result

	default:
		return r.AllIn(models.CategoryDatabaseHosting)
	}
}

// FilterOrmOptions returns the ORMs valid under the given selection. ORMs
// are SQL-only in this domain: a nosql type empties the result no matter
// what the compatibility graph says. Otherwise the selected system and
// hosting each narrow via their declared ORM compatibility, intersected.
func (r *Resolver) FilterOrmOptions(sel DatabaseSelection) models.IDSet {
	if sel.Type == models.DatabaseTypeNoSQL {
		return models.NewIDSet()
	}

	selections := make(map[string]string, 2)
	if sel.System != "" {
		selections[models.CategoryDatabases] = sel.System
	}
	if sel.Hosting != "" {
		selections[models.CategoryDatabaseHosting] = sel.Hosting
	}

	return r.Filter(selections, models.CategoryOrms)
}
