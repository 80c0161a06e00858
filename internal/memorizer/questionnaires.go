package memorizer

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// QuestionnaireFilter narrows GetQuestionnaires. Zero values select everything visible.
type QuestionnaireFilter struct {
	Scope  questionnaire.Scope
	Status *questionnaire.Status
	Text   string
	// LabelSubtreeRoot keeps questionnaires tagged under the label, directly or through one of their questions.
	LabelSubtreeRoot *uuid.UUID
	// Predicate is applied after the other conditions, before paging.
	Predicate func(questionnaire.Questionnaire) bool
	// PageNumber is 1-based; 0 selects the first page.
	PageNumber int
	PageSize   int
}

// QuestionnairePage is one page of questionnaires ordered by name then id.
type QuestionnairePage struct {
	Questionnaires []questionnaire.Questionnaire
	PageNumber     int
	PageSize       int
	TotalCount     int
}

// GetQuestionnaires lists the questionnaires visible to userID that match filter.
func (s *Service) GetQuestionnaires(ctx context.Context, userID uuid.UUID, filter QuestionnaireFilter) (*QuestionnairePage, error) {
	if err := normalizeFilter(&filter); err != nil {
		return nil, err
	}

	var tagged map[uuid.UUID]bool
	if filter.LabelSubtreeRoot != nil {
		var err error
		if tagged, err = s.taggedQuestionnaires(ctx, userID, *filter.LabelSubtreeRoot); err != nil {
			return nil, err
		}
	}

	found, err := s.questionnaires.SearchQuestionnaires(ctx, questionnaire.SearchParams{
		ViewerID: userID,
		Scope:    filter.Scope,
		Status:   filter.Status,
		Text:     filter.Text,
	})
	if err != nil {
		return nil, apperrors.Storage("search questionnaires", err)
	}

	matched := make([]questionnaire.Questionnaire, 0, len(found))
	for _, q := range found {
		if tagged != nil && !tagged[q.ID] {
			continue
		}
		if filter.Predicate != nil && !filter.Predicate(q) {
			continue
		}
		matched = append(matched, q)
	}

	start := min((filter.PageNumber-1)*filter.PageSize, len(matched))
	end := min(start+filter.PageSize, len(matched))
	return &QuestionnairePage{
		Questionnaires: matched[start:end],
		PageNumber:     filter.PageNumber,
		PageSize:       filter.PageSize,
		TotalCount:     len(matched),
	}, nil
}

func normalizeFilter(filter *QuestionnaireFilter) error {
	switch filter.Scope {
	case "":
		filter.Scope = questionnaire.ScopeVisible
	case questionnaire.ScopeVisible, questionnaire.ScopeOwn, questionnaire.ScopePublished:
	default:
		return apperrors.Validation("scope", "unknown scope %q", filter.Scope)
	}
	if filter.Status != nil {
		if _, err := questionnaire.ParseStatus(string(*filter.Status)); err != nil {
			return apperrors.Validation("status", "%v", err)
		}
	}

	switch {
	case filter.PageNumber < 0:
		return apperrors.Validation("pageNumber", "must not be negative")
	case filter.PageNumber == 0:
		filter.PageNumber = 1
	}
	switch {
	case filter.PageSize < 0 || filter.PageSize > MaxPageSize:
		return apperrors.Validation("pageSize", "must be between 1 and %d", MaxPageSize)
	case filter.PageSize == 0:
		filter.PageSize = DefaultPageSize
	}
	if filter.PageNumber-1 > math.MaxInt/filter.PageSize {
		return apperrors.Validation("pageNumber", "must not exceed %d", math.MaxInt/filter.PageSize+1)
	}
	return nil
}

// taggedQuestionnaires returns the questionnaires in the subtree of root, including
// the questionnaires of tagged questions.
func (s *Service) taggedQuestionnaires(ctx context.Context, userID, root uuid.UUID) (map[uuid.UUID]bool, error) {
	entities, err := s.labels.SubtreeOf(ctx, userID, root)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]bool)
	var questionIDs []uuid.UUID
	for _, e := range entities {
		switch e.Type() {
		case label.EntityQuestionnaire:
			result[e.ID()] = true
		case label.EntityQuestion:
			questionIDs = append(questionIDs, e.ID())
		}
	}
	if len(questionIDs) == 0 {
		return result, nil
	}
	questions, err := s.questionnaires.FindQuestions(ctx, questionIDs)
	if err != nil {
		return nil, apperrors.Storage("find questions", err)
	}
	for _, q := range questions {
		result[q.QuestionnaireID] = true
	}
	return result, nil
}
