package apiclient

import (
	"context"
	"errors"
	"estimator/pkg/serrors"
	"fmt"
	"net/http"

	"github.com/go-faster/jx"
)

// APIError is a non-2xx response of the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("api responded with status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status to a semantic error kind so callers can use
// errors.Is(err, serrors.ErrNotFound).
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return serrors.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return serrors.ErrBadRequest
	case http.StatusUnauthorized:
		return serrors.ErrUnauthorized
	case http.StatusForbidden:
		return serrors.ErrForbidden
	case http.StatusConflict:
		return serrors.ErrConflict
	case http.StatusRequestEntityTooLarge:
		return serrors.ErrTooLarge
	case http.StatusGatewayTimeout:
		return serrors.ErrTimeout
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return serrors.ErrUnavailable
	default:
		return serrors.ErrInternal
	}
}

// parseAPIError reads the {"code","message"} envelope. A {"detail"} body is
// accepted too; anything else keeps only the status.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if len(body) == 0 {
		return apiErr
	}

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return apiErr
	}
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "code":
			if d.Next() == jx.String {
				apiErr.Code, _ = d.Str()

				return nil
			}
		case "message", "detail":
			if d.Next() == jx.String {
				apiErr.Message, _ = d.Str()

				return nil
			}
		}

		return d.Skip()
	})

	return apiErr
}

// IsConnectivityError reports whether err means the API gave no response at
// all: refused connections, DNS failures and client timeouts. Cancellation
// by the caller does not count.
func IsConnectivityError(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	var apiErr *APIError

	return !errors.As(err, &apiErr) && errors.Is(err, serrors.ErrUnavailable)
}
