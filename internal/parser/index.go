package parser

import (
	"github.com/stackscope/core/internal/models"
)

// BuildIndex derives the symmetric compatibility index from a raw catalog.
//
// Every technology's compatibleWith is normalized to the category-map shape
// (bare arrays expand via the schema's implicit target for the owning
// category), then every normalized edge is recorded forward and, when the
// target technology exists, backward. The raw catalog may declare edges in
// one direction only; the index is the only place symmetry holds.
//
// Edges naming a target ID that does not exist in the catalog are dropped
// silently: stale or typo'd entries must not fail the load. The category
// pair still counts as related when the target category itself exists,
// since relatedness is about declarations, not resolvable endpoints.
func BuildIndex(catalog *models.Catalog) *models.Index {
	ix := &models.Index{
		Edges:   make(map[models.TechKey]map[string]models.IDSet),
		Related: make(map[models.CategoryPair]bool),
	}

	for category, techs := range catalog.Technologies {
		for id, tech := range techs {
			for target, targetIDs := range normalizeEdges(category, tech.Compatible) {
				if _, ok := catalog.Technologies[target]; !ok {
					continue
				}
				ix.Related[models.PairOf(category, target)] = true

				for _, targetID := range targetIDs {
					if !catalog.Has(target, targetID) {
						continue
					}
					addEdge(ix, category, id, target, targetID)
					addEdge(ix, target, targetID, category, id)
				}
			}
		}
	}

	return ix
}

// normalizeEdges converts either compatibleWith shape into the category-map
// form. Bare arrays on a category without a schema-defined implicit target
// are ignored.
func normalizeEdges(category string, cw models.CompatibleWith) map[string][]string {
	if cw.ByCategory != nil {
		return cw.ByCategory
	}
	if len(cw.Bare) == 0 {
		return nil
	}
	target, ok := models.ImplicitTarget(category)
	if !ok {
		return nil
	}
	return map[string][]string{target: cw.Bare}
}

func addEdge(ix *models.Index, category, id, target, targetID string) {
	key := models.TechKey{Category: category, ID: id}
	byTarget, ok := ix.Edges[key]
	if !ok {
		byTarget = make(map[string]models.IDSet)
		ix.Edges[key] = byTarget
	}
	ids, ok := byTarget[target]
	if !ok {
		ids = models.NewIDSet()
		byTarget[target] = ids
	}
	ids.Add(targetID)
}
