package server

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
)

func TestRepositoryHandler_toConnectError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    connect.Code
		wantMessage string
		wantDetail  *errdetails.BadRequest
		wantLogged  bool
	}{
		{
			name:     "validation with a field carries a BadRequest detail",
			err:      apperrors.Validation("pageSize", "must be between 1 and 100"),
			wantCode: connect.CodeInvalidArgument,
			wantDetail: &errdetails.BadRequest{
				FieldViolations: []*errdetails.BadRequest_FieldViolation{
					{Field: "pageSize", Description: "must be between 1 and 100"},
				},
			},
		},
		{
			name:     "wrapped access denied",
			err:      fmt.Errorf("guard > %w", apperrors.AccessDenied("question", questionID)),
			wantCode: connect.CodePermissionDenied,
		},
		{
			name:     "duplicate id",
			err:      apperrors.DuplicateID("review event", eventID),
			wantCode: connect.CodeAlreadyExists,
		},
		{
			name:        "storage failures hide their cause",
			err:         apperrors.Storage("append review event", errors.New("dial tcp: connection refused")),
			wantCode:    connect.CodeInternal,
			wantMessage: "internal error",
			wantLogged:  true,
		},
		{
			name:        "errors without a kind are storage failures",
			err:         errors.New("unexpected"),
			wantCode:    connect.CodeInternal,
			wantMessage: "internal error",
			wantLogged:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			handler := NewRepositoryHandler(nil, zap.New(core))

			got := handler.toConnectError(RecordReviewEventProcedure, tt.err)
			assert.Equal(t, tt.wantCode, got.Code())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got.Message())
			}

			if tt.wantLogged {
				require.Equal(t, 1, logs.Len())
				assert.Equal(t, RecordReviewEventProcedure, logs.All()[0].ContextMap()["procedure"])
			} else {
				assert.Equal(t, 0, logs.Len())
			}

			if tt.wantDetail == nil {
				assert.Empty(t, got.Details())
				return
			}
			require.Len(t, got.Details(), 1)
			value, err := got.Details()[0].Value()
			require.NoError(t, err)
			assert.True(t, proto.Equal(tt.wantDetail, value), "got %v", value)
		})
	}
}
