package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"files-manager/common"
	"files-manager/service"
)

// ContextUserID is the gin context key carrying the authenticated user id.
const ContextUserID = "id"

// TokenAuth resolves the X-Token header against the session store and puts
// the user id into the context. Missing, unknown and expired tokens all get
// the same unauthorized response.
func TokenAuth(svc *service.FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Token")
		userID, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			common.RespErrorStr(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
