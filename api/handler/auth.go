package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"files-manager/common"
)

// GetConnect exchanges HTTP Basic credentials (email:password) for a
// session token. Every failure is the same generic unauthorized response.
func (h *Handler) GetConnect(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		common.RespErrorStr(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, err := h.Svc.Connect(c.Request.Context(), email, password)
	if err != nil {
		respDomainError(c, err)
		return
	}
	common.RespSuccess(c, gin.H{"token": token})
}

// GetDisconnect revokes the session token from the X-Token header.
func (h *Handler) GetDisconnect(c *gin.Context) {
	token := c.GetHeader("X-Token")
	if err := h.Svc.Disconnect(c.Request.Context(), token); err != nil {
		respDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
