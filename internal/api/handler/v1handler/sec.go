package v1handler

import (
	"context"
	"crypto/rsa"
	"estimator/internal/config"
	"estimator/pkg/serrors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// SubjectKey holds the authenticated token subject in a request context.
const SubjectKey contextKey = "subject"

// SecHandlerOptions configure bearer token checks.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying bearer tokens. An empty
	// key disables authentication.
	PublicKey string
}

// NewSecHandlerOptions reads the JWT section of cfg.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the public key of opts. Without a key every request is let through.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are checked at all.
func (s *SecHandler) Enabled() bool {
	return s != nil && s.key != nil
}

// HandleBearerAuth validates token and stores its subject in the returned
// context. The subject must be a UUID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, SubjectKey, subject), nil
}

// GetSubjectFromContext returns the authenticated subject, or uuid.Nil.
func GetSubjectFromContext(ctx context.Context) uuid.UUID {
	subject, _ := ctx.Value(SubjectKey).(uuid.UUID)

	return subject
}

// Require wraps next with bearer authentication when it is enabled.
func (s *SecHandler) Require(next http.HandlerFunc) http.Handler {
	if !s.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeErrorResponse(w, &ErrorResponse{
				StatusCode: http.StatusUnauthorized,
				Response:   Error{Code: serrors.ErrUnauthorized.Error(), Message: "missing bearer token"},
			})

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeErrorResponse(w, &ErrorResponse{
				StatusCode: http.StatusUnauthorized,
				Response:   Error{Code: serrors.ErrUnauthorized.Error(), Message: serrors.MessageOf(err)},
			})

			return
		}

		next(w, r.WithContext(ctx))
	})
}
