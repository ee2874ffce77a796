package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// TokenService verifies session tokens.
type TokenService interface {
	Verify(token string) (model.Claims, error)
}

// Authenticate validates bearer tokens and injects their claims into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a token with 401 and requests with an
// unacceptable token with 403.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "authorization token is missing")
			return
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"route", r.Pattern,
				"error", err.Error())
			response.Error(w, http.StatusForbidden, "authorization token is invalid")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetClaimsToContext(r.Context(), claims)))
	})
}

// bearerToken returns the second space separated part of the header value.
func bearerToken(header string) string {
	_, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
