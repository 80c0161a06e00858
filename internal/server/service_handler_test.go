package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/memorizer"
	mock_server "github.com/at-ishikawa/memorizer/internal/mocks/server"
	"github.com/at-ishikawa/memorizer/internal/questionnaire"
	"github.com/at-ishikawa/memorizer/internal/scheduler"
)

func newTestServer(t *testing.T) (*httptest.Server, *mock_server.MockCore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	core := mock_server.NewMockCore(ctrl)

	auth, err := NewAuthenticator(testSecret, "memorizer")
	require.NoError(t, err)
	path, handler := NewRepositoryServiceHandler(
		NewRepositoryHandler(core, zap.NewNop()),
		connect.WithInterceptors(auth.Interceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := httptest.NewServer(CORSMiddleware(mux, []string{"http://localhost:3000"}))
	t.Cleanup(srv.Close)
	return srv, core
}

func bearer(t *testing.T) string {
	return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    "memorizer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
}

func newClient[Req, Res any](srv *httptest.Server, procedure string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](srv.Client(), srv.URL+procedure, connect.WithCodec(jsonCodec{}))
}

func TestRepositoryService_RecordReviewEvent(t *testing.T) {
	srv, core := newTestServer(t)
	core.EXPECT().RecordReviewEvent(gomock.Any(), userID, memorizer.ReviewEventInput{
		ID:           eventID,
		QuestionID:   questionID,
		EventTime:    t0,
		TypedAnswers: "go",
		ResultRating: 5,
	}).Return(&scheduler.LearningState{
		QuestionID: questionID,
		Phase:      scheduler.PhaseReview,
		Interval:   24 * time.Hour,
		Ease:       2.6,
		DueAt:      t0.Add(24 * time.Hour),
		Reviews:    1,
	}, nil)

	client := newClient[RecordReviewEventRequest, RecordReviewEventResponse](srv, RecordReviewEventProcedure)
	req := connect.NewRequest(&RecordReviewEventRequest{
		EventID:      eventID.String(),
		QuestionID:   questionID.String(),
		EventTime:    t0,
		TypedAnswers: "go",
		ResultRating: 5,
	})
	req.Header().Set("Authorization", bearer(t))

	resp, err := client.CallUnary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "review", resp.Msg.State.Phase)
	assert.Equal(t, int64(86400), resp.Msg.State.IntervalSeconds)
	assert.True(t, t0.Add(24*time.Hour).Equal(resp.Msg.State.DueAt))
}

func TestRepositoryService_Unauthenticated(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient[GetQuestionnaireRequest, GetQuestionnaireResponse](srv, GetQuestionnaireProcedure)

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&GetQuestionnaireRequest{IDOrCode: "1"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestRepositoryService_ValidationDetails(t *testing.T) {
	srv, core := newTestServer(t)
	core.EXPECT().GetQuestionnaires(gomock.Any(), userID, memorizer.QuestionnaireFilter{
		Scope:    questionnaire.Scope("everything"),
		PageSize: 10,
	}).Return(nil, apperrors.Validation("scope", "unknown scope %q", "everything"))

	client := newClient[GetQuestionnairesRequest, GetQuestionnairesResponse](srv, GetQuestionnairesProcedure)
	req := connect.NewRequest(&GetQuestionnairesRequest{Scope: "everything", PageSize: 10})
	req.Header().Set("Authorization", bearer(t))

	_, err := client.CallUnary(context.Background(), req)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, connect.CodeInvalidArgument, connectErr.Code())
	require.Len(t, connectErr.Details(), 1)
	value, err := connectErr.Details()[0].Value()
	require.NoError(t, err)
	badRequest, ok := value.(*errdetails.BadRequest)
	require.True(t, ok)
	assert.Equal(t, "scope", badRequest.GetFieldViolations()[0].GetField())
}

func TestCORSMiddleware(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: "http://localhost:3000", wantOrigin: "http://localhost:3000"},
		{name: "other origin", origin: "http://evil.example", wantOrigin: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodOptions, srv.URL+QuestionsDueProcedure, nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tt.origin)

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tt.wantOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}

func TestRepositoryClient(t *testing.T) {
	srv, core := newTestServer(t)
	core.EXPECT().QuestionsDue(gomock.Any(), userID, t0, (*uuid.UUID)(nil)).Return([]uuid.UUID{questionID}, nil)
	core.EXPECT().LearningState(gomock.Any(), userID, questionID).
		Return(&scheduler.LearningState{QuestionID: questionID, Phase: scheduler.PhaseLearning, Interval: time.Hour}, nil)

	client := NewRepositoryClient(srv.Client(), srv.URL+"/", strings.TrimPrefix(bearer(t), "Bearer "))

	due, err := client.QuestionsDue(context.Background(), &QuestionsDueRequest{AsOf: t0})
	require.NoError(t, err)
	assert.Equal(t, []string{questionID.String()}, due.QuestionIDs)

	state, err := client.GetLearningState(context.Background(), &GetLearningStateRequest{QuestionID: questionID.String()})
	require.NoError(t, err)
	assert.Equal(t, "learning", state.State.Phase)
	assert.Equal(t, int64(3600), state.State.IntervalSeconds)

	unauthenticated := NewRepositoryClient(srv.Client(), srv.URL, "")
	_, err = unauthenticated.QuestionsDue(context.Background(), &QuestionsDueRequest{})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
