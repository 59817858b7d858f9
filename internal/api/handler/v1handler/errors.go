package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"estimator/pkg/logger"
	"estimator/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an Error with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

var kindStatus = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrTooLarge, http.StatusRequestEntityTooLarge, "request too large"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a status and an error body. Errors without a known
// semantic kind are logged and reported as internal errors.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	if errors.Is(err, context.DeadlineExceeded) {
		err = serrors.Wrap(serrors.ErrTimeout, err, "")
	}

	kind := serrors.KindOf(err)
	for _, ks := range kindStatus {
		if kind != ks.kind {
			continue
		}
		msg := serrors.MessageOf(err)
		if msg == "" {
			msg = ks.message
		}
		if ks.status >= http.StatusInternalServerError {
			logger.Warn(ctx, "request failed", zap.Error(err))
		}

		return &ErrorResponse{StatusCode: ks.status, Response: Error{Code: ks.kind.Error(), Message: msg}}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	writeErrorResponse(w, res)
}

func writeErrorResponse(w http.ResponseWriter, res *ErrorResponse) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Response.Code)
	e.FieldStart("message")
	e.Str(res.Response.Message)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
