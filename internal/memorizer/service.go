// Package memorizer is the core the transport layer calls into.
// It validates input, checks access and delegates to the scheduler and the label graph.
package memorizer

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/access"
	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/eventlog"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
	"github.com/at-ishikawa/memorizer/internal/scheduler"
)

//go:generate mockgen -source=service.go -destination=../mocks/memorizer/mock_service.go -package=mock_memorizer

// Scheduler derives learning states from the event log.
type Scheduler interface {
	Params() scheduler.Params
	State(ctx context.Context, userID, questionID uuid.UUID) (*scheduler.LearningState, error)
	QuestionsDueAt(ctx context.Context, userID uuid.UUID, asOf time.Time, root *uuid.UUID) ([]uuid.UUID, error)
}

// LabelGraph maintains the label forest of each user.
type LabelGraph interface {
	Assign(ctx context.Context, userID uuid.UUID, entity label.EntityRef, labelID uuid.UUID, parentLabelID *uuid.UUID, position int) (*label.Assignment, error)
	Move(ctx context.Context, userID, assignmentID uuid.UUID, newParentLabelID *uuid.UUID, newPosition int) (*label.Assignment, error)
	Remove(ctx context.Context, userID, assignmentID uuid.UUID) error
	SubtreeOf(ctx context.Context, userID, labelID uuid.UUID) ([]label.EntityRef, error)
}

// Service implements the operations exposed to clients.
type Service struct {
	questionnaires questionnaire.Repository
	events         eventlog.Repository
	guard          *access.Guard
	scheduler      Scheduler
	labels         LabelGraph
	logger         *zap.Logger
	now            func() time.Time
}

// NewService creates a new Service.
func NewService(
	questionnaires questionnaire.Repository,
	events eventlog.Repository,
	guard *access.Guard,
	scheduler Scheduler,
	labels LabelGraph,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		questionnaires: questionnaires,
		events:         events,
		guard:          guard,
		scheduler:      scheduler,
		labels:         labels,
		logger:         logger,
		now:            time.Now,
	}
}

// GetQuestionnaire resolves idOrCode as a questionnaire id, or as the code of a published questionnaire.
func (s *Service) GetQuestionnaire(ctx context.Context, userID uuid.UUID, idOrCode string) (*questionnaire.Questionnaire, error) {
	if id, err := uuid.Parse(idOrCode); err == nil {
		return s.guard.ReadableQuestionnaire(ctx, userID, id)
	}
	code, err := strconv.Atoi(idOrCode)
	if err != nil {
		return nil, apperrors.Validation("idOrCode", "%q is neither a questionnaire id nor a code", idOrCode)
	}

	q, err := s.questionnaires.FindPublishedByCode(ctx, code)
	if err != nil {
		return nil, apperrors.Storage("find questionnaire by code", err)
	}
	if q == nil {
		return nil, apperrors.NotFound("questionnaire with code", code)
	}
	return q, nil
}

// ReviewEventInput is a review event as submitted by a client.
// The user is taken from the caller, never from the input.
type ReviewEventInput struct {
	ID            uuid.UUID
	QuestionID    uuid.UUID
	EventTime     time.Time
	QuestionIsNew bool
	TypedAnswers  string
	ResultRating  int
	PenaltyPoints int
	Message       string
}

// RecordReviewEvent appends the event and returns the learning state after it.
// Submitting an id that is already recorded returns the current state without a second effect.
func (s *Service) RecordReviewEvent(ctx context.Context, userID uuid.UUID, input ReviewEventInput) (*scheduler.LearningState, error) {
	event := eventlog.ReviewEvent{
		ID:            input.ID,
		UserID:        userID,
		QuestionID:    input.QuestionID,
		EventTime:     input.EventTime,
		QuestionIsNew: input.QuestionIsNew,
		TypedAnswers:  input.TypedAnswers,
		ResultRating:  input.ResultRating,
		PenaltyPoints: input.PenaltyPoints,
		Message:       input.Message,
	}
	if err := s.scheduler.Params().ValidateEvent(event); err != nil {
		return nil, err
	}
	if _, _, err := s.guard.ReadableQuestion(ctx, userID, event.QuestionID); err != nil {
		return nil, err
	}

	err := s.events.Append(ctx, &event)
	switch {
	case errors.Is(err, apperrors.ErrDuplicateID):
		if err := s.checkRecorded(ctx, event); err != nil {
			return nil, err
		}
		s.logger.Info("Review event is already recorded",
			zap.Stringer("event_id", event.ID),
			zap.Stringer("question_id", event.QuestionID))
	case err != nil:
		return nil, apperrors.Storage("append review event", err)
	default:
		s.logger.Debug("Recorded review event",
			zap.Stringer("event_id", event.ID),
			zap.Int64("sequence", event.Sequence),
			zap.Int("result_rating", event.ResultRating))
	}
	return s.scheduler.State(ctx, userID, event.QuestionID)
}

// checkRecorded confirms that the stored event with the same id is about the same user and question.
func (s *Service) checkRecorded(ctx context.Context, event eventlog.ReviewEvent) error {
	existing, err := s.events.FindByID(ctx, event.ID)
	if err != nil {
		return apperrors.Storage("find review event", err)
	}
	if existing == nil {
		return apperrors.Storage("find review event", errors.New("duplicate event id has no stored event"))
	}
	if !existing.SameSubject(event) {
		return apperrors.Conflict("review event %s is already recorded for another question", event.ID)
	}
	return nil
}

// QuestionsDue returns the questions due at asOf, earliest first. A zero asOf means now.
func (s *Service) QuestionsDue(ctx context.Context, userID uuid.UUID, asOf time.Time, labelSubtreeRoot *uuid.UUID) ([]uuid.UUID, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	return s.scheduler.QuestionsDueAt(ctx, userID, asOf.UTC(), labelSubtreeRoot)
}

// LearningState returns the state of one question the user may read.
func (s *Service) LearningState(ctx context.Context, userID, questionID uuid.UUID) (*scheduler.LearningState, error) {
	if _, _, err := s.guard.ReadableQuestion(ctx, userID, questionID); err != nil {
		return nil, err
	}
	return s.scheduler.State(ctx, userID, questionID)
}

// AssignLabel attaches labelID to entity under parentLabelID at position.
func (s *Service) AssignLabel(ctx context.Context, userID uuid.UUID, entity label.EntityRef, labelID uuid.UUID, parentLabelID *uuid.UUID, position int) (*label.Assignment, error) {
	return s.labels.Assign(ctx, userID, entity, labelID, parentLabelID, position)
}

// MoveLabel re-parents an assignment and places it at newPosition among its new siblings.
func (s *Service) MoveLabel(ctx context.Context, userID, assignmentID uuid.UUID, newParentLabelID *uuid.UUID, newPosition int) (*label.Assignment, error) {
	return s.labels.Move(ctx, userID, assignmentID, newParentLabelID, newPosition)
}

// RemoveLabel deletes an assignment and moves its children up to its former parent.
func (s *Service) RemoveLabel(ctx context.Context, userID, assignmentID uuid.UUID) error {
	return s.labels.Remove(ctx, userID, assignmentID)
}

// LabelSubtree returns the entities tagged with labelID or a label nested under it.
func (s *Service) LabelSubtree(ctx context.Context, userID, labelID uuid.UUID) ([]label.EntityRef, error) {
	return s.labels.SubtreeOf(ctx, userID, labelID)
}
