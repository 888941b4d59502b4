package middleware

import (
	"strings"

	"boba-storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys for user info
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"

	sessionCookie = "session"
)

// Authenticate parses the access token from the Authorization header or the
// session cookie and attaches the principal to the request context. An
// anonymous or invalid token leaves the request anonymous; the guard decides
// whether that matters for the path.
func Authenticate(tokens service.TokenProvider, roles service.RoleResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := tokens.ParseAndValidateAccess(c.Request.Context(), raw)
		if err != nil {
			log.Debug("access token rejected", zap.Error(err))
			c.Next()
			return
		}

		role := roles.Resolve(claims)

		ctx := service.WithUserID(c.Request.Context(), claims.UserID)
		ctx = service.WithRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, role)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if authz := c.GetHeader("Authorization"); authz != "" {
		if t, ok := ExtractBearerToken(authz); ok {
			return t
		}
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}

// ExtractBearerToken pulls the token out of an Authorization header value,
// tolerating stray quotes and trailing junk.
func ExtractBearerToken(authz string) (string, bool) {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	t := strings.Trim(strings.TrimSpace(parts[1]), " \"'")
	if i := strings.IndexRune(t, ','); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if i := strings.IndexByte(t, ' '); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	t = strings.Trim(t, " \"'")
	return t, t != ""
}
