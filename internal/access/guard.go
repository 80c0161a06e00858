// Package access checks that a user may read or change a questionnaire, question or label.
//
// A missing entity is reported as apperrors.ErrNotFound and an existing entity the
// user may not touch as apperrors.ErrAccessDenied. The error never says more than that.
package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
)

// Lookup reads the records ownership is decided on. Finders return nil for absent records.
type Lookup interface {
	FindQuestionnaire(ctx context.Context, id uuid.UUID) (*questionnaire.Questionnaire, error)
	FindQuestion(ctx context.Context, id uuid.UUID) (*questionnaire.Question, error)
	FindLabel(ctx context.Context, id uuid.UUID) (*questionnaire.Label, error)
}

// Guard enforces ownership rules.
type Guard struct {
	lookup Lookup
}

// NewGuard creates a new Guard.
func NewGuard(lookup Lookup) *Guard {
	return &Guard{lookup: lookup}
}

// ReadableQuestionnaire returns the questionnaire if userID owns it or it is published.
func (g *Guard) ReadableQuestionnaire(ctx context.Context, userID, id uuid.UUID) (*questionnaire.Questionnaire, error) {
	q, err := g.questionnaire(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.OwnerID != userID && !q.IsPublished() {
		return nil, apperrors.AccessDenied("questionnaire", id)
	}
	return q, nil
}

// EditableQuestionnaire returns the questionnaire if userID owns it.
func (g *Guard) EditableQuestionnaire(ctx context.Context, userID, id uuid.UUID) (*questionnaire.Questionnaire, error) {
	q, err := g.questionnaire(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.OwnerID != userID {
		return nil, apperrors.AccessDenied("questionnaire", id)
	}
	return q, nil
}

// ReadableQuestion returns the question and its questionnaire if the questionnaire is readable.
func (g *Guard) ReadableQuestion(ctx context.Context, userID, id uuid.UUID) (*questionnaire.Question, *questionnaire.Questionnaire, error) {
	question, parent, err := g.question(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if parent.OwnerID != userID && !parent.IsPublished() {
		return nil, nil, apperrors.AccessDenied("question", id)
	}
	return question, parent, nil
}

// EditableQuestion returns the question and its questionnaire if userID owns the questionnaire.
func (g *Guard) EditableQuestion(ctx context.Context, userID, id uuid.UUID) (*questionnaire.Question, *questionnaire.Questionnaire, error) {
	question, parent, err := g.question(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if parent.OwnerID != userID {
		return nil, nil, apperrors.AccessDenied("question", id)
	}
	return question, parent, nil
}

// UsableLabel returns the label if userID owns it. Labels are never shared.
func (g *Guard) UsableLabel(ctx context.Context, userID, id uuid.UUID) (*questionnaire.Label, error) {
	l, err := g.lookup.FindLabel(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("find label", err)
	}
	if l == nil {
		return nil, apperrors.NotFound("label", id)
	}
	if l.OwnerID != userID {
		return nil, apperrors.AccessDenied("label", id)
	}
	return l, nil
}

// CheckLabel is UsableLabel without the record.
func (g *Guard) CheckLabel(ctx context.Context, userID, id uuid.UUID) error {
	_, err := g.UsableLabel(ctx, userID, id)
	return err
}

// CheckEntity verifies that userID may attach labels to the entity.
func (g *Guard) CheckEntity(ctx context.Context, userID uuid.UUID, entity label.EntityRef) error {
	switch entity.Type() {
	case label.EntityQuestionnaire:
		_, err := g.EditableQuestionnaire(ctx, userID, entity.ID())
		return err
	case label.EntityQuestion:
		_, _, err := g.EditableQuestion(ctx, userID, entity.ID())
		return err
	}
	return apperrors.Validation("entityType", "unknown entity type %q", entity.Type())
}

func (g *Guard) questionnaire(ctx context.Context, id uuid.UUID) (*questionnaire.Questionnaire, error) {
	q, err := g.lookup.FindQuestionnaire(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("find questionnaire", err)
	}
	if q == nil {
		return nil, apperrors.NotFound("questionnaire", id)
	}
	return q, nil
}

func (g *Guard) question(ctx context.Context, id uuid.UUID) (*questionnaire.Question, *questionnaire.Questionnaire, error) {
	question, err := g.lookup.FindQuestion(ctx, id)
	if err != nil {
		return nil, nil, apperrors.Storage("find question", err)
	}
	if question == nil {
		return nil, nil, apperrors.NotFound("question", id)
	}
	parent, err := g.lookup.FindQuestionnaire(ctx, question.QuestionnaireID)
	if err != nil {
		return nil, nil, apperrors.Storage("find questionnaire", err)
	}
	if parent == nil {
		return nil, nil, apperrors.NotFound("question", id)
	}
	return question, parent, nil
}
