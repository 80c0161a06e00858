package scheduler

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/eventlog"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
)

// LabelSubtree resolves the entities tagged under a label.
type LabelSubtree interface {
	SubtreeOf(ctx context.Context, userID, labelID uuid.UUID) ([]label.EntityRef, error)
}

// Service answers due queries from the event log.
// It does not check access; callers pass only ids the user may read.
type Service struct {
	questionnaires questionnaire.Repository
	events         eventlog.Repository
	labels         LabelSubtree
	params         Params
	logger         *zap.Logger
}

// NewService creates a new Service.
func NewService(questionnaires questionnaire.Repository, events eventlog.Repository, labels LabelSubtree, params Params, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		questionnaires: questionnaires,
		events:         events,
		labels:         labels,
		params:         params,
		logger:         logger,
	}
}

// Params returns the parameters the service folds with.
func (s *Service) Params() Params {
	return s.params
}

// State folds the events of one question for userID.
func (s *Service) State(ctx context.Context, userID, questionID uuid.UUID) (*LearningState, error) {
	events, err := s.events.FindByQuestion(ctx, userID, questionID)
	if err != nil {
		return nil, apperrors.Storage("read review events", err)
	}
	state := ComputeState(questionID, events, s.params)
	return &state, nil
}

// QuestionsDueAt returns the ids of the questions due at asOf, earliest first.
// Ties are broken by question id so that the order is stable across calls.
func (s *Service) QuestionsDueAt(ctx context.Context, userID uuid.UUID, asOf time.Time, root *uuid.UUID) ([]uuid.UUID, error) {
	states, err := s.DueStates(ctx, userID, asOf, root)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(states))
	for i, state := range states {
		ids[i] = state.QuestionID
	}
	return ids, nil
}

// DueStates is QuestionsDueAt returning the full states.
func (s *Service) DueStates(ctx context.Context, userID uuid.UUID, asOf time.Time, root *uuid.UUID) ([]LearningState, error) {
	events, err := s.events.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage("read review events", err)
	}
	byQuestion := eventlog.GroupByQuestion(events)

	candidates, err := s.candidates(ctx, userID, byQuestion)
	if err != nil {
		return nil, err
	}
	if root != nil {
		if candidates, err = s.restrictToSubtree(ctx, userID, *root, candidates); err != nil {
			return nil, err
		}
	}

	var due []LearningState
	for questionID := range candidates {
		state := ComputeState(questionID, byQuestion[questionID], s.params)
		if state.IsDue(asOf) {
			due = append(due, state)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].DueAt.Before(due[j].DueAt)
		}
		return bytes.Compare(due[i].QuestionID[:], due[j].QuestionID[:]) < 0
	})

	s.logger.Debug("Computed due questions",
		zap.Stringer("user_id", userID),
		zap.Time("as_of", asOf),
		zap.Int("candidates", len(candidates)),
		zap.Int("due", len(due)))
	return due, nil
}

// candidates maps every question the user studies to its questionnaire.
// A question is studied when its questionnaire is owned by the user, or when the user
// has reviewed it and it still exists in a questionnaire the user may read.
func (s *Service) candidates(ctx context.Context, userID uuid.UUID, byQuestion map[uuid.UUID][]eventlog.ReviewEvent) (map[uuid.UUID]uuid.UUID, error) {
	owned, err := s.questionnaires.SearchQuestionnaires(ctx, questionnaire.SearchParams{
		ViewerID: userID,
		Scope:    questionnaire.ScopeOwn,
	})
	if err != nil {
		return nil, apperrors.Storage("search questionnaires", err)
	}
	ownedIDs := make([]uuid.UUID, len(owned))
	for i, q := range owned {
		ownedIDs[i] = q.ID
	}
	questions, err := s.questionnaires.FindQuestionsByQuestionnaires(ctx, ownedIDs)
	if err != nil {
		return nil, apperrors.Storage("find questions", err)
	}
	result := make(map[uuid.UUID]uuid.UUID, len(questions))
	for _, q := range questions {
		result[q.ID] = q.QuestionnaireID
	}

	reviewed, err := s.reviewedQuestions(ctx, userID, byQuestion, result)
	if err != nil {
		return nil, err
	}
	for questionID, questionnaireID := range reviewed {
		result[questionID] = questionnaireID
	}
	return result, nil
}

func (s *Service) reviewedQuestions(ctx context.Context, userID uuid.UUID, byQuestion map[uuid.UUID][]eventlog.ReviewEvent, known map[uuid.UUID]uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	var ids []uuid.UUID
	for questionID := range byQuestion {
		if _, ok := known[questionID]; !ok {
			ids = append(ids, questionID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	questions, err := s.questionnaires.FindQuestions(ctx, ids)
	if err != nil {
		return nil, apperrors.Storage("find questions", err)
	}
	parentIDs := make([]uuid.UUID, 0, len(questions))
	seen := make(map[uuid.UUID]bool, len(questions))
	for _, q := range questions {
		if !seen[q.QuestionnaireID] {
			seen[q.QuestionnaireID] = true
			parentIDs = append(parentIDs, q.QuestionnaireID)
		}
	}
	parents, err := s.questionnaires.FindQuestionnaires(ctx, parentIDs)
	if err != nil {
		return nil, apperrors.Storage("find questionnaires", err)
	}
	readable := make(map[uuid.UUID]bool, len(parents))
	for _, p := range parents {
		readable[p.ID] = p.OwnerID == userID || p.IsPublished()
	}

	result := make(map[uuid.UUID]uuid.UUID)
	for _, q := range questions {
		if readable[q.QuestionnaireID] {
			result[q.ID] = q.QuestionnaireID
		}
	}
	return result, nil
}

func (s *Service) restrictToSubtree(ctx context.Context, userID, root uuid.UUID, candidates map[uuid.UUID]uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	entities, err := s.labels.SubtreeOf(ctx, userID, root)
	if err != nil {
		return nil, err
	}
	tagged := make(map[label.EntityRef]bool, len(entities))
	for _, e := range entities {
		tagged[e] = true
	}

	result := make(map[uuid.UUID]uuid.UUID)
	for questionID, questionnaireID := range candidates {
		if tagged[label.QuestionRef(questionID)] || tagged[label.QuestionnaireRef(questionnaireID)] {
			result[questionID] = questionnaireID
		}
	}
	return result, nil
}
