package rest

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-courses-api/internal/core/domain"
	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/ports"
	"go-courses-api/internal/observability"
)

// Middleware is a standard http.Handler decorator.
type Middleware func(http.Handler) http.Handler

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	principalKey contextKey = "principal"
)

// Chain wraps h with the given middlewares; the first one is outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequestID ensures every request carries an id, generating one when the
// client did not send X-Request-ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)
		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger emits one structured line per request.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

			next.ServeHTTP(ww, r)

			rid, _ := r.Context().Value(requestIDKey).(string)
			logger.Info("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.code,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", rid,
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.code = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// parseBasicCredentials decodes an HTTP Basic Authorization header value
// into an email/secret pair. It is a pure function so the parsing rules can
// be tested without a transport.
func parseBasicCredentials(header string) (email, secret string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	email, secret, found := strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return "", "", false
	}
	return email, secret, true
}

// BasicAuth authenticates every request with the credentials in the
// Authorization header and stores the resolved account in the context.
// A missing or malformed header is rejected before any account lookup.
// No token or session is issued; each request is verified on its own.
func BasicAuth(auth ports.Authenticator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, secret, ok := parseBasicCredentials(r.Header.Get("Authorization"))
			if !ok {
				logger.WarnContext(r.Context(), "authorization header missing or malformed")
				observability.RecordAuthFailure()
				respondError(w, logger, domain.ErrAccessDenied)
				return
			}

			user, err := auth.Authenticate(r.Context(), email, secret)
			if err != nil {
				observability.RecordAuthFailure()
				respondError(w, logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// principalFromContext returns the account attached by BasicAuth.
func principalFromContext(ctx context.Context) (account.User, bool) {
	user, ok := ctx.Value(principalKey).(account.User)
	return user, ok
}
