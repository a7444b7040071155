// Package models defines the core data structures of the compatibility engine.
// It includes the catalog input schema and the derived index structures.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Category names the domain rules depend on. The engine itself is
// category-agnostic; only the database/hosting/ORM specializations and the
// bare-array expansion table reference these.
const (
	CategoryFrameworks      = "frameworks"
	CategoryStateManagement = "stateManagement"
	CategoryUILibraries     = "uiLibraries"
	CategoryFormHandling    = "formHandling"
	CategoryRouting         = "routing"
	CategoryAPIClient       = "apiClient"
	CategoryAuthentication  = "authentication"
	CategoryBackends        = "backends"
	CategoryDatabases       = "databases"
	CategoryDatabaseHosting = "databaseHosting"
	CategoryOrms            = "orms"
	CategoryHosting         = "hosting"
)

// Database type values carried in the Technology Type field for the
// databases category.
const (
	DatabaseTypeSQL   = "sql"
	DatabaseTypeNoSQL = "nosql"
)

// SelectionDatabaseType is the reserved selections key for the database type
// axis. It is a selection dimension but not a technology category, so the
// generic filter never treats it as a constraint; only the database
// specializations read it.
const SelectionDatabaseType = "databaseType"

// Catalog is the immutable input document: category -> technology ID ->
// technology record. IDs are unique within a category, not globally.
type Catalog struct {
	Technologies map[string]map[string]Technology `json:"technologies" validate:"required,min=1,dive,min=1"`
}

// Technology is a single selectable item within a category. Known fields are
// typed; any other descriptive attributes the catalog carries are preserved
// in Extra.
type Technology struct {
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Type        string         `json:"type,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Compatible  CompatibleWith `json:"compatibleWith,omitzero"`
	Extra       map[string]any `json:"-"`
}

// CompatibleWith holds a technology's declared compatibility edges in either
// of the two authored shapes: a category -> ID-list mapping, or a bare ID
// list whose target category is implicit from the owning category. Exactly
// one of the two fields is set. Both shapes are normalized away during index
// construction; nothing downstream branches on shape.
type CompatibleWith struct {
	ByCategory map[string][]string
	Bare       []string
}

func (c *CompatibleWith) UnmarshalJSON(data []byte) error {
	var byCategory map[string][]string
	if err := json.Unmarshal(data, &byCategory); err == nil {
		c.ByCategory = byCategory
		c.Bare = nil
		return nil
	}

	var bare []string
	if err := json.Unmarshal(data, &bare); err == nil {
		c.Bare = bare
		c.ByCategory = nil
		return nil
	}

	return fmt.Errorf("compatibleWith must be a category map or an ID list")
}

func (c CompatibleWith) MarshalJSON() ([]byte, error) {
	if c.ByCategory != nil {
		return json.Marshal(c.ByCategory)
	}
	if c.Bare != nil {
		return json.Marshal(c.Bare)
	}
	return []byte("null"), nil
}

// IsZero reports whether no compatibility edges were declared.
func (c CompatibleWith) IsZero() bool {
	return len(c.ByCategory) == 0 && len(c.Bare) == 0
}

func (t *Technology) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := map[string]any{
		"name":           &t.Name,
		"description":    &t.Description,
		"type":           &t.Type,
		"tags":           &t.Tags,
		"compatibleWith": &t.Compatible,
	}

	for key, value := range raw {
		if dst, ok := known[key]; ok {
			if err := json.Unmarshal(value, dst); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			continue
		}

		var extra any
		if err := json.Unmarshal(value, &extra); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if t.Extra == nil {
			t.Extra = make(map[string]any)
		}
		t.Extra[key] = extra
	}

	return nil
}

// implicitEdgeTargets maps categories whose bare-array compatibleWith form
// has a schema-defined target category. A bare array on any other category
// has no defined meaning and is ignored during normalization.
var implicitEdgeTargets = map[string]string{
	CategoryStateManagement: CategoryFrameworks,
	CategoryUILibraries:     CategoryFrameworks,
	CategoryFormHandling:    CategoryFrameworks,
	CategoryRouting:         CategoryFrameworks,
	CategoryAPIClient:       CategoryFrameworks,
	CategoryAuthentication:  CategoryFrameworks,
	CategoryOrms:            CategoryDatabases,
	CategoryDatabaseHosting: CategoryDatabases,
}

// ImplicitTarget returns the target category of the bare-array compatibleWith
// form for the given source category.
func ImplicitTarget(category string) (string, bool) {
	target, ok := implicitEdgeTargets[category]
	return target, ok
}

// Has reports whether the catalog contains the given technology.
func (c *Catalog) Has(category, id string) bool {
	if c == nil {
		return false
	}
	techs, ok := c.Technologies[category]
	if !ok {
		return false
	}
	_, ok = techs[id]
	return ok
}

// CategoryNames returns the catalog's category names in sorted order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Technologies))
	for name := range c.Technologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IDsIn returns the set of technology IDs in the given category. Unknown
// categories yield an empty set.
func (c *Catalog) IDsIn(category string) IDSet {
	ids := make(IDSet, len(c.Technologies[category]))
	for id := range c.Technologies[category] {
		ids.Add(id)
	}
	return ids
}
