package middlewareprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/policy"
	"assetflow/providers"
	"assetflow/utils"

	"go.uber.org/zap"
)

type contextKey string

const identityContextKey contextKey = "identity_key"

// IdentityLookup loads the current state of a user, so role changes and
// deactivation apply to tokens that were already issued.
type IdentityLookup interface {
	GetUserByID(ctx context.Context, id int64) (models.Identity, error)
}

type DefaultAuthMiddleware struct {
	users  IdentityLookup
	tokens providers.TokenProvider
	logger providers.ZapLoggerProvider
}

func NewAuthMiddlewareService(users IdentityLookup, tokens providers.TokenProvider, logger providers.ZapLoggerProvider) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := bearerToken(r)
			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, nil, "missing access token")
				return
			}

			claims, err := a.tokens.ParseAccessToken(accessToken)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired token")
				return
			}

			identity, err := a.users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if apperror.IsNotFound(err) {
					utils.RespondError(w, http.StatusUnauthorized, err, "user no longer exists")
					return
				}
				a.logger.GetLogger().Error("failed to load identity", zap.Int64("user_id", claims.UserID), zap.Error(err))
				utils.RespondError(w, http.StatusInternalServerError, err, "failed to load user")
				return
			}
			if !identity.IsActive {
				utils.RespondAppError(w, apperror.NewAuth(apperror.InactiveAccount, "account is inactive"), "")
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCapability rejects callers whose role holds no grant for the action.
// Ownership-scoped grants pass here and are checked again by the handler
// once the resource is loaded.
func (a *DefaultAuthMiddleware) RequireCapability(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := a.GetIdentityFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			if decision := policy.Can(identity, action, nil); !decision.Allowed {
				utils.RespondError(w, http.StatusForbidden, nil, decision.Reason)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetIdentityFromContext(r *http.Request) (models.Identity, error) {
	identity, ok := r.Context().Value(identityContextKey).(models.Identity)
	if !ok {
		return models.Identity{}, errors.New("identity not found in context")
	}
	return identity, nil
}

// WithIdentity returns a context carrying the identity, as the JWT middleware
// would set it.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
