// Package domain contains the core types for the entity-command toolkit.
package domain

// EntityRef identifies a single domain entity by type and id, e.g. ("Shot", 100).
// It is comparable and used as a map key.
type EntityRef struct {
	Type string
	ID   int
}

// EntityGroup is a run of entities sharing the same type.
type EntityGroup struct {
	Type     string
	Entities []EntityRef
}

// GroupByType coalesces contiguous runs of entities with the same type into
// groups, preserving the relative order of entities.
//
// Only contiguous runs are merged: entities of the same type that are
// scattered across the input end up in separate groups. Callers that need
// one group per type must sort the input by type first.
func GroupByType(entities []EntityRef) []EntityGroup {
	var groups []EntityGroup
	for _, entity := range entities {
		if n := len(groups); n > 0 && groups[n-1].Type == entity.Type {
			groups[n-1].Entities = append(groups[n-1].Entities, entity)
			continue
		}
		groups = append(groups, EntityGroup{
			Type:     entity.Type,
			Entities: []EntityRef{entity},
		})
	}
	return groups
}
