package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/ecomvoyage/ecomvoyage-backend/api/responses"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

// TokenVerifier checks a Firebase ID token and returns its decoded claims.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Auth validates the bearer token and seeds the request context with the
// Firebase uid. Requests without a valid token are rejected.
func Auth(verifier TokenVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			decoded, err := verifier.VerifyIDToken(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			uid := strings.TrimSpace(decoded.UID)
			if uid == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing uid in token"))
				return
			}

			ctx := seedIdentity(r.Context(), logg, decoded, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth seeds the context with the uid when a valid token is present
// and passes the request through anonymously otherwise. Used on endpoints
// that personalize for signed-in shoppers but serve everyone.
func OptionalAuth(verifier TokenVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			decoded, err := verifier.VerifyIDToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			uid := strings.TrimSpace(decoded.UID)
			if uid == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := seedIdentity(r.Context(), logg, decoded, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func seedIdentity(ctx context.Context, logg *logger.Logger, decoded *fbauth.Token, uid string) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, uid)
	if email := claimString(decoded, "email"); email != "" {
		ctx = context.WithValue(ctx, ctxUserEmail, email)
	}
	if logg != nil {
		ctx = logg.WithUserID(ctx, uid)
	}
	return ctx
}

func claimString(decoded *fbauth.Token, key string) string {
	if decoded == nil {
		return ""
	}
	if raw, ok := decoded.Claims[key]; ok {
		if s, ok := raw.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}
