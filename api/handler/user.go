package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"files-manager/api/middleware"
	"files-manager/common"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNewUser registers an account. The password is stored as a bcrypt
// hash; duplicate emails are rejected.
func (h *Handler) PostNewUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{
		Success: true,
		Data:    gin.H{"id": user.Id, "email": user.Email},
	})
}

// GetMe returns the account behind the session token.
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64(middleware.ContextUserID)
	user, err := h.Svc.UserByID(c.Request.Context(), userID)
	if err != nil {
		respDomainError(c, err)
		return
	}
	common.RespSuccess(c, gin.H{"id": user.Id, "email": user.Email})
}
