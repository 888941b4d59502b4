package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"boba-storefront/internal/models"

	"github.com/gin-gonic/gin"
)

var guardedPrefixes = []string{"/account", "/checkout", "/admin"}

// Guard enforces authentication on protected path prefixes. Anonymous
// requests are redirected to the login page with the original path as the
// return target; /admin additionally requires an elevated role.
func Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !isGuarded(path) {
			c.Next()
			return
		}

		if _, ok := c.Get(CtxUserID); !ok {
			target := path
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusFound, "/auth/login?redirect="+url.QueryEscape(target))
			c.Abort()
			return
		}

		if strings.HasPrefix(path, "/admin") {
			role, _ := c.Get(CtxUserRole)
			r, ok := role.(models.Role)
			if !ok || !r.Elevated() {
				c.String(http.StatusForbidden, "Forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func isGuarded(path string) bool {
	for _, p := range guardedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
