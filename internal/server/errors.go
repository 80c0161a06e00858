package server

import (
	"errors"

	"connectrpc.com/connect"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
)

var kindCodes = map[apperrors.Kind]connect.Code{
	apperrors.KindValidation:   connect.CodeInvalidArgument,
	apperrors.KindAccessDenied: connect.CodePermissionDenied,
	apperrors.KindNotFound:     connect.CodeNotFound,
	apperrors.KindCycle:        connect.CodeFailedPrecondition,
	apperrors.KindConflict:     connect.CodeAlreadyExists,
	apperrors.KindDuplicateID:  connect.CodeAlreadyExists,
	apperrors.KindStorage:      connect.CodeInternal,
}

// toConnectError maps an error of the core to a connect error.
// Storage failures are logged and reported without their cause.
func (h *RepositoryHandler) toConnectError(procedure string, err error) *connect.Error {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindStorage {
		h.logger.Error("Request failed", zap.String("procedure", procedure), zap.Error(err))
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	connectErr := connect.NewError(kindCodes[kind], err)
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind == apperrors.KindValidation && appErr.Field != "" {
		if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: appErr.Field, Description: appErr.Detail},
			},
		}); detailErr == nil {
			connectErr.AddDetail(detail)
		}
	}
	return connectErr
}
