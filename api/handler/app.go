package handler

import (
	"github.com/gin-gonic/gin"

	"files-manager/common"
)

// GetStatus reports liveness of the session store and the database.
func (h *Handler) GetStatus(c *gin.Context) {
	redisAlive, dbAlive := h.Svc.Status(c.Request.Context())
	common.RespSuccess(c, gin.H{"redis": redisAlive, "db": dbAlive})
}

// GetStats reports the number of users and files.
func (h *Handler) GetStats(c *gin.Context) {
	users, files, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respDomainError(c, err)
		return
	}
	common.RespSuccess(c, gin.H{"users": users, "files": files})
}
