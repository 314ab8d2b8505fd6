package profile

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey struct{}

// FromContext returns the viewer profile attached by Viewer middleware,
// or nil for anonymous requests. Anonymous viewers are priced as retail.
func FromContext(ctx context.Context) *Profile {
	p, _ := ctx.Value(contextKey{}).(*Profile)
	return p
}

// Viewer resolves the bearer token into a profile and attaches it to the
// request context. Requests without a valid token pass through as
// anonymous rather than being rejected: every storefront read works
// signed out.
func Viewer(service Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := service.ParseToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			p, err := service.ProfileByUserID(r.Context(), userID.String())
			if err != nil {
				// A valid session without a profile row still browses
				// as retail.
				logger.Warn("profile lookup failed",
					zap.String("user_id", userID.String()),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose viewer is not an admin. Used by the
// catalog write endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := FromContext(r.Context())
		if p == nil || !p.IsAdmin {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
