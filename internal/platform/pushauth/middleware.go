// Package pushauth はプッシュ系エンドポイント用の共有シークレット検証を提供します。
package pushauth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
)

// HeaderName is the request header carrying the shared secret.
const HeaderName = "X-PUSH-TOKEN"

// TokenRequired returns a Gin middleware that rejects any request whose
// X-PUSH-TOKEN header does not exactly match the configured secret.
// Rejection happens before the handler runs, so a bad token never has
// side effects. The token comes from startup config, never from the
// environment mid-request.
func TokenRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(HeaderName)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Next()
	}
}
