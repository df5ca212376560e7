package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"files-manager/api/middleware"
	"files-manager/common"
	"files-manager/service"
)

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type" binding:"omitempty,oneof=folder file image"`
	ParentID int64  `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// PostUpload creates a folder, file or image record. Leaf kinds carry
// base64 content; the response returns before any thumbnail exists.
func (h *Handler) PostUpload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			common.RespErrorStr(c, http.StatusBadRequest, "Missing type")
			return
		}
		common.RespError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	userID := c.GetInt64(middleware.ContextUserID)
	file, err := h.Svc.Upload(c.Request.Context(), userID, service.UploadRequest{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		respDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Success: true, Data: file})
}

// GetShow returns the metadata of an owned record.
func (h *Handler) GetShow(c *gin.Context) {
	fileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespErrorStr(c, http.StatusNotFound, "Not found")
		return
	}
	userID := c.GetInt64(middleware.ContextUserID)
	file, err := h.Svc.Show(c.Request.Context(), userID, fileID)
	if err != nil {
		respDomainError(c, err)
		return
	}
	common.RespSuccess(c, file)
}

// GetIndex lists the owner's records, optionally under one parent, 20 per
// page. parentId=0 selects top-level records only.
func (h *Handler) GetIndex(c *gin.Context) {
	userID := c.GetInt64(middleware.ContextUserID)

	var parentID *int64
	if raw, ok := c.GetQuery("parentId"); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			common.RespErrorStr(c, http.StatusBadRequest, "Invalid parentId")
			return
		}
		parentID = &parsed
	}
	page, _ := strconv.Atoi(c.Query("page"))

	files, err := h.Svc.List(c.Request.Context(), userID, parentID, page)
	if err != nil {
		respDomainError(c, err)
		return
	}
	common.RespSuccess(c, files)
}

func (h *Handler) setVisibility(c *gin.Context, isPublic bool) {
	fileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespErrorStr(c, http.StatusNotFound, "Not found")
		return
	}
	userID := c.GetInt64(middleware.ContextUserID)
	file, err := h.Svc.SetVisibility(c.Request.Context(), userID, fileID, isPublic)
	if err != nil {
		respDomainError(c, err)
		return
	}
	common.RespSuccess(c, file)
}

// PutPublish makes a record publicly readable.
func (h *Handler) PutPublish(c *gin.Context) {
	h.setVisibility(c, true)
}

// PutUnpublish makes a record private again.
func (h *Handler) PutUnpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

// GetFileData streams the content of a record, or a thumbnail variant when
// ?size= is given. The token is optional here: public records need none,
// private records are simply not found for anyone but their owner.
func (h *Handler) GetFileData(c *gin.Context) {
	fileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespErrorStr(c, http.StatusNotFound, "Not found")
		return
	}

	var requester *int64
	if token := c.GetHeader("X-Token"); token != "" {
		if userID, err := h.Svc.Resolve(c.Request.Context(), token); err == nil {
			requester = &userID
		}
	}

	size := 0
	if raw, ok := c.GetQuery("size"); ok {
		size, err = strconv.Atoi(raw)
		if err != nil || size == 0 {
			common.RespErrorStr(c, http.StatusBadRequest, "Invalid size")
			return
		}
	}

	result, err := h.Svc.ReadContent(c.Request.Context(), service.ContentRequest{
		FileID:    fileID,
		Requester: requester,
		Size:      size,
	})
	if err != nil {
		respDomainError(c, err)
		return
	}
	c.Header("Content-Type", result.MimeType)
	c.File(result.Path)
}
