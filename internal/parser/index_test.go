package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackscope/core/internal/models"
)

func mustCatalog(t *testing.T, jsonData string) *models.Catalog {
	t.Helper()
	catalog, err := ParseCatalog([]byte(jsonData))
	require.NoError(t, err)
	return catalog
}

func TestBuildIndex_SymmetricClosure(t *testing.T) {
	// React declares the edge; Redux does not declare anything back.
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {"compatibleWith": {"stateManagement": ["Redux"]}}
			},
			"stateManagement": {
				"Redux": {}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	assert.True(t, ix.Compatible("frameworks", "React", "stateManagement").Has("Redux"))
	assert.True(t, ix.Compatible("stateManagement", "Redux", "frameworks").Has("React"))
}

func TestBuildIndex_BothSidesDeclared(t *testing.T) {
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {"compatibleWith": {"stateManagement": ["Redux"]}}
			},
			"stateManagement": {
				"Redux": {"compatibleWith": {"frameworks": ["React"]}}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	// Doubly-declared edges collapse to a single entry per direction.
	assert.Equal(t, []string{"Redux"}, ix.Compatible("frameworks", "React", "stateManagement").Sorted())
	assert.Equal(t, []string{"React"}, ix.Compatible("stateManagement", "Redux", "frameworks").Sorted())
}

func TestBuildIndex_BareArrayExpansion(t *testing.T) {
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {},
				"Vue": {}
			},
			"stateManagement": {
				"Vuex": {"compatibleWith": ["Vue"]}
			},
			"orms": {
				"Prisma": {"compatibleWith": ["PostgreSQL"]}
			},
			"databases": {
				"PostgreSQL": {"type": "sql"}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	t.Run("stateManagement bare array targets frameworks", func(t *testing.T) {
		assert.True(t, ix.Compatible("stateManagement", "Vuex", "frameworks").Has("Vue"))
		assert.True(t, ix.Compatible("frameworks", "Vue", "stateManagement").Has("Vuex"))
		assert.False(t, ix.Compatible("frameworks", "React", "stateManagement").Has("Vuex"))
	})

	t.Run("orms bare array targets databases", func(t *testing.T) {
		assert.True(t, ix.Compatible("orms", "Prisma", "databases").Has("PostgreSQL"))
		assert.True(t, ix.Compatible("databases", "PostgreSQL", "orms").Has("Prisma"))
	})
}

func TestBuildIndex_BareArrayWithoutImplicitTarget(t *testing.T) {
	// frameworks has no schema-defined implicit target, so a bare array there
	// cannot be normalized and is ignored.
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {"compatibleWith": ["Redux"]}
			},
			"stateManagement": {
				"Redux": {}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	assert.Equal(t, 0, ix.Compatible("frameworks", "React", "stateManagement").Len())
	assert.False(t, ix.RelatedPair("frameworks", "stateManagement"))
}

func TestBuildIndex_StaleEdgesDropped(t *testing.T) {
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {"compatibleWith": {"stateManagement": ["Redux", "RemovedLib"]}}
			},
			"stateManagement": {
				"Redux": {}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	t.Run("existing target kept, stale target dropped", func(t *testing.T) {
		assert.Equal(t, []string{"Redux"}, ix.Compatible("frameworks", "React", "stateManagement").Sorted())
	})

	t.Run("declaration still relates the category pair", func(t *testing.T) {
		assert.True(t, ix.RelatedPair("frameworks", "stateManagement"))
	})
}

func TestBuildIndex_UnknownTargetCategory(t *testing.T) {
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {"compatibleWith": {"deployment": ["Docker"]}}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	assert.Equal(t, 0, ix.Compatible("frameworks", "React", "deployment").Len())
	assert.False(t, ix.RelatedPair("frameworks", "deployment"))
}

func TestBuildIndex_SymmetryProperty(t *testing.T) {
	catalog := mustCatalog(t, `{
		"technologies": {
			"frameworks": {
				"React": {"compatibleWith": {"stateManagement": ["Redux", "Zustand"], "hosting": ["Vercel"]}},
				"Vue": {"compatibleWith": {"hosting": ["Vercel", "Netlify"]}}
			},
			"stateManagement": {
				"Redux": {},
				"Zustand": {"compatibleWith": ["React"]},
				"Vuex": {"compatibleWith": ["Vue"]}
			},
			"hosting": {
				"Vercel": {},
				"Netlify": {}
			}
		}
	}`)

	ix := BuildIndex(catalog)

	// Every edge in the built index must be discoverable from both endpoints.
	for key, byTarget := range ix.Edges {
		for target, ids := range byTarget {
			for id := range ids {
				reverse := ix.Compatible(target, id, key.Category)
				assert.True(t, reverse.Has(key.ID),
					"edge (%s,%s)->(%s,%s) has no reverse", key.Category, key.ID, target, id)
			}
		}
	}
}
