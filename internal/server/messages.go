package server

import (
	"time"

	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
	"github.com/at-ishikawa/memorizer/internal/scheduler"
)

type Questionnaire struct {
	ID          string    `json:"id"`
	Code        int       `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"ownerId"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LearningState struct {
	QuestionID        string    `json:"questionId"`
	Phase             string    `json:"phase"`
	IntervalSeconds   int64     `json:"intervalSeconds"`
	Ease              float64   `json:"ease"`
	DueAt             time.Time `json:"dueAt"`
	ConsecutiveLapses int       `json:"consecutiveLapses"`
	PassStreak        int       `json:"passStreak"`
	Reviews           int       `json:"reviews"`
}

type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Assignment struct {
	ID            string    `json:"id"`
	Entity        EntityRef `json:"entity"`
	LabelID       string    `json:"labelId"`
	ParentLabelID string    `json:"parentLabelId,omitempty"`
	LabelNumber   int       `json:"labelNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

type GetQuestionnairesRequest struct {
	Scope            string `json:"scope,omitempty"`
	Status           string `json:"status,omitempty"`
	Text             string `json:"text,omitempty"`
	LabelSubtreeRoot string `json:"labelSubtreeRoot,omitempty"`
	PageNumber       int    `json:"pageNumber,omitempty"`
	PageSize         int    `json:"pageSize,omitempty"`
}

type GetQuestionnairesResponse struct {
	Questionnaires []Questionnaire `json:"questionnaires"`
	PageNumber     int             `json:"pageNumber"`
	PageSize       int             `json:"pageSize"`
	TotalCount     int             `json:"totalCount"`
}

type GetQuestionnaireRequest struct {
	IDOrCode string `json:"idOrCode"`
}

type GetQuestionnaireResponse struct {
	Questionnaire Questionnaire `json:"questionnaire"`
}

type RecordReviewEventRequest struct {
	EventID       string    `json:"eventId"`
	QuestionID    string    `json:"questionId"`
	EventTime     time.Time `json:"eventTime"`
	QuestionIsNew bool      `json:"questionIsNew"`
	TypedAnswers  string    `json:"typedAnswers"`
	ResultRating  int       `json:"resultRating"`
	PenaltyPoints int       `json:"penaltyPoints"`
	Message       string    `json:"message,omitempty"`
}

type RecordReviewEventResponse struct {
	State LearningState `json:"state"`
}

type GetLearningStateRequest struct {
	QuestionID string `json:"questionId"`
}

type GetLearningStateResponse struct {
	State LearningState `json:"state"`
}

type QuestionsDueRequest struct {
	// AsOf defaults to the server time.
	AsOf             time.Time `json:"asOf,omitempty"`
	LabelSubtreeRoot string    `json:"labelSubtreeRoot,omitempty"`
}

type QuestionsDueResponse struct {
	QuestionIDs []string `json:"questionIds"`
}

type AssignLabelRequest struct {
	EntityType    string `json:"entityType"`
	EntityID      string `json:"entityId"`
	LabelID       string `json:"labelId"`
	ParentLabelID string `json:"parentLabelId,omitempty"`
	Position      int    `json:"position"`
}

type AssignLabelResponse struct {
	Assignment Assignment `json:"assignment"`
}

type MoveLabelRequest struct {
	AssignmentID     string `json:"assignmentId"`
	NewParentLabelID string `json:"newParentLabelId,omitempty"`
	NewPosition      int    `json:"newPosition"`
}

type MoveLabelResponse struct {
	Assignment Assignment `json:"assignment"`
}

type RemoveLabelRequest struct {
	AssignmentID string `json:"assignmentId"`
}

type RemoveLabelResponse struct{}

type LabelSubtreeRequest struct {
	LabelID string `json:"labelId"`
}

type LabelSubtreeResponse struct {
	Entities []EntityRef `json:"entities"`
}

func toQuestionnaire(q questionnaire.Questionnaire) Questionnaire {
	return Questionnaire{
		ID:          q.ID.String(),
		Code:        q.Code,
		Name:        q.Name,
		Description: q.Description,
		Status:      string(q.Status),
		OwnerID:     q.OwnerID.String(),
		Version:     q.Version,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toLearningState(s scheduler.LearningState) LearningState {
	return LearningState{
		QuestionID:        s.QuestionID.String(),
		Phase:             string(s.Phase),
		IntervalSeconds:   int64(s.Interval / time.Second),
		Ease:              s.Ease,
		DueAt:             s.DueAt,
		ConsecutiveLapses: s.ConsecutiveLapses,
		PassStreak:        s.PassStreak,
		Reviews:           s.Reviews,
	}
}

func toEntityRef(e label.EntityRef) EntityRef {
	return EntityRef{Type: string(e.Type()), ID: e.ID().String()}
}

func toAssignment(a label.Assignment) Assignment {
	result := Assignment{
		ID:          a.ID.String(),
		Entity:      toEntityRef(a.Entity),
		LabelID:     a.LabelID.String(),
		LabelNumber: a.LabelNumber,
		CreatedAt:   a.CreatedAt,
	}
	if a.ParentLabelID != nil {
		result.ParentLabelID = a.ParentLabelID.String()
	}
	return result
}
