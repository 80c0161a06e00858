package label

import (
	"time"

	"github.com/google/uuid"
)

// Assignment attaches a label to an entity, optionally nested under a parent label.
// LabelNumber orders the assignment among its siblings, the assignments of the same
// owner that share ParentLabelID and entity type.
type Assignment struct {
	ID            uuid.UUID
	Entity        EntityRef
	LabelID       uuid.UUID
	ParentLabelID *uuid.UUID
	LabelNumber   int
	OwnerID       uuid.UUID
	CreatedAt     time.Time
}

type siblingKey struct {
	parent     uuid.UUID
	hasParent  bool
	entityType EntityType
}

func keyOf(parent *uuid.UUID, entityType EntityType) siblingKey {
	if parent == nil {
		return siblingKey{entityType: entityType}
	}
	return siblingKey{parent: *parent, hasParent: true, entityType: entityType}
}

func (a Assignment) siblingKey() siblingKey {
	return keyOf(a.ParentLabelID, a.Entity.Type())
}

// sameEdge reports whether both assignments attach the same label to the same entity under the same parent.
func (a Assignment) sameEdge(entity EntityRef, labelID uuid.UUID, parent *uuid.UUID) bool {
	return a.Entity == entity && a.LabelID == labelID && sameParent(a.ParentLabelID, parent)
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
