// Package server provides Connect RPC handlers for the repository service.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/memorizer"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
	"github.com/at-ishikawa/memorizer/internal/scheduler"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_handler.go -package=mock_server

const RepositoryServiceName = "memorizer.v1.RepositoryService"

const (
	GetQuestionnairesProcedure = "/" + RepositoryServiceName + "/GetQuestionnaires"
	GetQuestionnaireProcedure  = "/" + RepositoryServiceName + "/GetQuestionnaire"
	RecordReviewEventProcedure = "/" + RepositoryServiceName + "/RecordReviewEvent"
	GetLearningStateProcedure  = "/" + RepositoryServiceName + "/GetLearningState"
	QuestionsDueProcedure      = "/" + RepositoryServiceName + "/QuestionsDue"
	AssignLabelProcedure       = "/" + RepositoryServiceName + "/AssignLabel"
	MoveLabelProcedure         = "/" + RepositoryServiceName + "/MoveLabel"
	RemoveLabelProcedure       = "/" + RepositoryServiceName + "/RemoveLabel"
	LabelSubtreeProcedure      = "/" + RepositoryServiceName + "/LabelSubtree"
)

// Core is the part of memorizer.Service the handlers call.
type Core interface {
	GetQuestionnaires(ctx context.Context, userID uuid.UUID, filter memorizer.QuestionnaireFilter) (*memorizer.QuestionnairePage, error)
	GetQuestionnaire(ctx context.Context, userID uuid.UUID, idOrCode string) (*questionnaire.Questionnaire, error)
	RecordReviewEvent(ctx context.Context, userID uuid.UUID, input memorizer.ReviewEventInput) (*scheduler.LearningState, error)
	LearningState(ctx context.Context, userID, questionID uuid.UUID) (*scheduler.LearningState, error)
	QuestionsDue(ctx context.Context, userID uuid.UUID, asOf time.Time, labelSubtreeRoot *uuid.UUID) ([]uuid.UUID, error)
	AssignLabel(ctx context.Context, userID uuid.UUID, entity label.EntityRef, labelID uuid.UUID, parentLabelID *uuid.UUID, position int) (*label.Assignment, error)
	MoveLabel(ctx context.Context, userID, assignmentID uuid.UUID, newParentLabelID *uuid.UUID, newPosition int) (*label.Assignment, error)
	RemoveLabel(ctx context.Context, userID, assignmentID uuid.UUID) error
	LabelSubtree(ctx context.Context, userID, labelID uuid.UUID) ([]label.EntityRef, error)
}

// RepositoryHandler implements the memorizer.v1.RepositoryService procedures.
type RepositoryHandler struct {
	core   Core
	logger *zap.Logger
}

// NewRepositoryHandler creates a new RepositoryHandler.
func NewRepositoryHandler(core Core, logger *zap.Logger) *RepositoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryHandler{core: core, logger: logger}
}

// NewRepositoryServiceHandler builds an HTTP handler serving every procedure of h.
// It returns the path to mount the handler on.
func NewRepositoryServiceHandler(h *RepositoryHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetQuestionnairesProcedure, connect.NewUnaryHandler(GetQuestionnairesProcedure, h.GetQuestionnaires, opts...))
	mux.Handle(GetQuestionnaireProcedure, connect.NewUnaryHandler(GetQuestionnaireProcedure, h.GetQuestionnaire, opts...))
	mux.Handle(RecordReviewEventProcedure, connect.NewUnaryHandler(RecordReviewEventProcedure, h.RecordReviewEvent, opts...))
	mux.Handle(GetLearningStateProcedure, connect.NewUnaryHandler(GetLearningStateProcedure, h.GetLearningState, opts...))
	mux.Handle(QuestionsDueProcedure, connect.NewUnaryHandler(QuestionsDueProcedure, h.QuestionsDue, opts...))
	mux.Handle(AssignLabelProcedure, connect.NewUnaryHandler(AssignLabelProcedure, h.AssignLabel, opts...))
	mux.Handle(MoveLabelProcedure, connect.NewUnaryHandler(MoveLabelProcedure, h.MoveLabel, opts...))
	mux.Handle(RemoveLabelProcedure, connect.NewUnaryHandler(RemoveLabelProcedure, h.RemoveLabel, opts...))
	mux.Handle(LabelSubtreeProcedure, connect.NewUnaryHandler(LabelSubtreeProcedure, h.LabelSubtree, opts...))
	return "/" + RepositoryServiceName + "/", mux
}

// GetQuestionnaires returns a page of the questionnaires visible to the caller.
func (h *RepositoryHandler) GetQuestionnaires(
	ctx context.Context,
	req *connect.Request[GetQuestionnairesRequest],
) (*connect.Response[GetQuestionnairesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	filter := memorizer.QuestionnaireFilter{
		Scope:      questionnaire.Scope(req.Msg.Scope),
		Text:       req.Msg.Text,
		PageNumber: req.Msg.PageNumber,
		PageSize:   req.Msg.PageSize,
	}
	if req.Msg.Status != "" {
		status := questionnaire.Status(req.Msg.Status)
		filter.Status = &status
	}
	if filter.LabelSubtreeRoot, err = parseOptionalUUID("labelSubtreeRoot", req.Msg.LabelSubtreeRoot); err != nil {
		return nil, h.toConnectError(GetQuestionnairesProcedure, err)
	}

	page, err := h.core.GetQuestionnaires(ctx, userID, filter)
	if err != nil {
		return nil, h.toConnectError(GetQuestionnairesProcedure, err)
	}

	questionnaires := make([]Questionnaire, len(page.Questionnaires))
	for i, q := range page.Questionnaires {
		questionnaires[i] = toQuestionnaire(q)
	}
	return connect.NewResponse(&GetQuestionnairesResponse{
		Questionnaires: questionnaires,
		PageNumber:     page.PageNumber,
		PageSize:       page.PageSize,
		TotalCount:     page.TotalCount,
	}), nil
}

// GetQuestionnaire returns one questionnaire by id or by published code.
func (h *RepositoryHandler) GetQuestionnaire(
	ctx context.Context,
	req *connect.Request[GetQuestionnaireRequest],
) (*connect.Response[GetQuestionnaireResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	q, err := h.core.GetQuestionnaire(ctx, userID, req.Msg.IDOrCode)
	if err != nil {
		return nil, h.toConnectError(GetQuestionnaireProcedure, err)
	}
	return connect.NewResponse(&GetQuestionnaireResponse{Questionnaire: toQuestionnaire(*q)}), nil
}

// RecordReviewEvent appends a review event and returns the resulting state.
func (h *RepositoryHandler) RecordReviewEvent(
	ctx context.Context,
	req *connect.Request[RecordReviewEventRequest],
) (*connect.Response[RecordReviewEventResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	eventID, err := parseUUID("eventId", req.Msg.EventID)
	if err != nil {
		return nil, h.toConnectError(RecordReviewEventProcedure, err)
	}
	questionID, err := parseUUID("questionId", req.Msg.QuestionID)
	if err != nil {
		return nil, h.toConnectError(RecordReviewEventProcedure, err)
	}

	state, err := h.core.RecordReviewEvent(ctx, userID, memorizer.ReviewEventInput{
		ID:            eventID,
		QuestionID:    questionID,
		EventTime:     req.Msg.EventTime,
		QuestionIsNew: req.Msg.QuestionIsNew,
		TypedAnswers:  req.Msg.TypedAnswers,
		ResultRating:  req.Msg.ResultRating,
		PenaltyPoints: req.Msg.PenaltyPoints,
		Message:       req.Msg.Message,
	})
	if err != nil {
		return nil, h.toConnectError(RecordReviewEventProcedure, err)
	}
	return connect.NewResponse(&RecordReviewEventResponse{State: toLearningState(*state)}), nil
}

// GetLearningState returns the current state of one question.
func (h *RepositoryHandler) GetLearningState(
	ctx context.Context,
	req *connect.Request[GetLearningStateRequest],
) (*connect.Response[GetLearningStateResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	questionID, err := parseUUID("questionId", req.Msg.QuestionID)
	if err != nil {
		return nil, h.toConnectError(GetLearningStateProcedure, err)
	}
	state, err := h.core.LearningState(ctx, userID, questionID)
	if err != nil {
		return nil, h.toConnectError(GetLearningStateProcedure, err)
	}
	return connect.NewResponse(&GetLearningStateResponse{State: toLearningState(*state)}), nil
}

// QuestionsDue returns the ids of the due questions, earliest first.
func (h *RepositoryHandler) QuestionsDue(
	ctx context.Context,
	req *connect.Request[QuestionsDueRequest],
) (*connect.Response[QuestionsDueResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	root, err := parseOptionalUUID("labelSubtreeRoot", req.Msg.LabelSubtreeRoot)
	if err != nil {
		return nil, h.toConnectError(QuestionsDueProcedure, err)
	}

	ids, err := h.core.QuestionsDue(ctx, userID, req.Msg.AsOf, root)
	if err != nil {
		return nil, h.toConnectError(QuestionsDueProcedure, err)
	}
	questionIDs := make([]string, len(ids))
	for i, id := range ids {
		questionIDs[i] = id.String()
	}
	return connect.NewResponse(&QuestionsDueResponse{QuestionIDs: questionIDs}), nil
}

// AssignLabel attaches a label to a questionnaire or question.
func (h *RepositoryHandler) AssignLabel(
	ctx context.Context,
	req *connect.Request[AssignLabelRequest],
) (*connect.Response[AssignLabelResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	entity, labelID, parent, err := parseAssignLabel(req.Msg)
	if err != nil {
		return nil, h.toConnectError(AssignLabelProcedure, err)
	}

	a, err := h.core.AssignLabel(ctx, userID, entity, labelID, parent, req.Msg.Position)
	if err != nil {
		return nil, h.toConnectError(AssignLabelProcedure, err)
	}
	return connect.NewResponse(&AssignLabelResponse{Assignment: toAssignment(*a)}), nil
}

func parseAssignLabel(msg *AssignLabelRequest) (label.EntityRef, uuid.UUID, *uuid.UUID, error) {
	entityType, err := label.ParseEntityType(msg.EntityType)
	if err != nil {
		return label.EntityRef{}, uuid.Nil, nil, apperrors.Validation("entityType", "%v", err)
	}
	entityID, err := parseUUID("entityId", msg.EntityID)
	if err != nil {
		return label.EntityRef{}, uuid.Nil, nil, err
	}
	entity, err := label.NewEntityRef(entityType, entityID)
	if err != nil {
		return label.EntityRef{}, uuid.Nil, nil, apperrors.Validation("entityType", "%v", err)
	}
	labelID, err := parseUUID("labelId", msg.LabelID)
	if err != nil {
		return label.EntityRef{}, uuid.Nil, nil, err
	}
	parent, err := parseOptionalUUID("parentLabelId", msg.ParentLabelID)
	if err != nil {
		return label.EntityRef{}, uuid.Nil, nil, err
	}
	return entity, labelID, parent, nil
}

// MoveLabel re-attaches an assignment under another parent or position.
func (h *RepositoryHandler) MoveLabel(
	ctx context.Context,
	req *connect.Request[MoveLabelRequest],
) (*connect.Response[MoveLabelResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	assignmentID, err := parseUUID("assignmentId", req.Msg.AssignmentID)
	if err != nil {
		return nil, h.toConnectError(MoveLabelProcedure, err)
	}
	parent, err := parseOptionalUUID("newParentLabelId", req.Msg.NewParentLabelID)
	if err != nil {
		return nil, h.toConnectError(MoveLabelProcedure, err)
	}

	a, err := h.core.MoveLabel(ctx, userID, assignmentID, parent, req.Msg.NewPosition)
	if err != nil {
		return nil, h.toConnectError(MoveLabelProcedure, err)
	}
	return connect.NewResponse(&MoveLabelResponse{Assignment: toAssignment(*a)}), nil
}

// RemoveLabel detaches an assignment.
func (h *RepositoryHandler) RemoveLabel(
	ctx context.Context,
	req *connect.Request[RemoveLabelRequest],
) (*connect.Response[RemoveLabelResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	assignmentID, err := parseUUID("assignmentId", req.Msg.AssignmentID)
	if err != nil {
		return nil, h.toConnectError(RemoveLabelProcedure, err)
	}
	if err := h.core.RemoveLabel(ctx, userID, assignmentID); err != nil {
		return nil, h.toConnectError(RemoveLabelProcedure, err)
	}
	return connect.NewResponse(&RemoveLabelResponse{}), nil
}

// LabelSubtree returns the entities tagged under a label.
func (h *RepositoryHandler) LabelSubtree(
	ctx context.Context,
	req *connect.Request[LabelSubtreeRequest],
) (*connect.Response[LabelSubtreeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	labelID, err := parseUUID("labelId", req.Msg.LabelID)
	if err != nil {
		return nil, h.toConnectError(LabelSubtreeProcedure, err)
	}
	entities, err := h.core.LabelSubtree(ctx, userID, labelID)
	if err != nil {
		return nil, h.toConnectError(LabelSubtreeProcedure, err)
	}
	result := make([]EntityRef, len(entities))
	for i, e := range entities {
		result[i] = toEntityRef(e)
	}
	return connect.NewResponse(&LabelSubtreeResponse{Entities: result}), nil
}

func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, connect.NewError(connect.CodeUnauthenticated, errors.New("no authenticated user"))
	}
	return userID, nil
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperrors.Validation(field, "%q is not a valid id", value)
	}
	return id, nil
}

func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseUUID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
