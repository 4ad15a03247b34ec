// Package middleware provides request-intercepting middleware for the
// prime-cms web server.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/web/token"
)

// SessionGate guards the given path prefixes. Requests without a valid
// session cookie are redirected to the public entry page; missing,
// invalid and expired tokens are treated identically so the response
// leaks nothing about token validity. Valid requests pass through
// unchanged, with no identity attached to the context.
func SessionGate(secret []byte, prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		protected := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(path, prefix) {
				protected = true
				break
			}
		}
		if !protected {
			c.Next()
			return
		}

		if _, err := token.FromRequest(c, secret); err != nil {
			c.Redirect(http.StatusTemporaryRedirect, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
