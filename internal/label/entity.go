// Package label maintains the per-owner forest of entity-label assignments.
package label

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// EntityType discriminates the entity an assignment is attached to.
type EntityType string

const (
	EntityQuestionnaire EntityType = "questionnaire"
	EntityQuestion      EntityType = "question"
)

// ParseEntityType converts a string into an EntityType.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityQuestionnaire, EntityQuestion:
		return EntityType(s), nil
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// EntityRef points at exactly one questionnaire or question.
// The zero value is invalid; build one with QuestionnaireRef or QuestionRef.
type EntityRef struct {
	kind EntityType
	id   uuid.UUID
}

// QuestionnaireRef refers to a questionnaire.
func QuestionnaireRef(id uuid.UUID) EntityRef {
	return EntityRef{kind: EntityQuestionnaire, id: id}
}

// QuestionRef refers to a question.
func QuestionRef(id uuid.UUID) EntityRef {
	return EntityRef{kind: EntityQuestion, id: id}
}

// NewEntityRef builds a reference from a type tag.
func NewEntityRef(entityType EntityType, id uuid.UUID) (EntityRef, error) {
	switch entityType {
	case EntityQuestionnaire:
		return QuestionnaireRef(id), nil
	case EntityQuestion:
		return QuestionRef(id), nil
	}
	return EntityRef{}, fmt.Errorf("unknown entity type %q", entityType)
}

func (r EntityRef) Type() EntityType { return r.kind }
func (r EntityRef) ID() uuid.UUID    { return r.id }

// IsZero reports whether r was not built by a constructor.
func (r EntityRef) IsZero() bool {
	return r.kind == ""
}

func (r EntityRef) String() string {
	return string(r.kind) + ":" + r.id.String()
}

// Less orders references by type and then by id bytes.
func (r EntityRef) Less(other EntityRef) bool {
	if r.kind != other.kind {
		return r.kind < other.kind
	}
	return bytes.Compare(r.id[:], other.id[:]) < 0
}
