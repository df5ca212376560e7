// Package handler holds the gin handlers for the HTTP surface. Handlers are
// thin: they bind typed requests, call the file service and translate
// domain errors into responses.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"files-manager/common"
	"files-manager/service"
)

// Handler carries the service handle into the gin handlers. It is
// constructed once at startup; there is no package-level state.
type Handler struct {
	Svc *service.FileService
}

func NewHandler(svc *service.FileService) *Handler {
	return &Handler{Svc: svc}
}

var errStatus = map[error]struct {
	code int
	msg  string
}{
	common.ErrUnauthorized:    {http.StatusUnauthorized, "Unauthorized"},
	common.ErrNotFound:        {http.StatusNotFound, "Not found"},
	common.ErrMissingEmail:    {http.StatusBadRequest, "Missing email"},
	common.ErrMissingPassword: {http.StatusBadRequest, "Missing password"},
	common.ErrEmailTaken:      {http.StatusBadRequest, "Already exist"},
	common.ErrMissingName:     {http.StatusBadRequest, "Missing name"},
	common.ErrMissingType:     {http.StatusBadRequest, "Missing type"},
	common.ErrMissingData:     {http.StatusBadRequest, "Missing data"},
	common.ErrParentNotFound:  {http.StatusBadRequest, "Parent not found"},
	common.ErrParentNotFolder: {http.StatusBadRequest, "Parent is not a folder"},
	common.ErrFolderNoContent: {http.StatusBadRequest, "A folder doesn't have content"},
	common.ErrInvalidSize:     {http.StatusBadRequest, "Invalid size"},
	common.ErrNotImage:        {http.StatusBadRequest, "Not an image"},
}

// respDomainError maps a domain error onto its HTTP response. Anything not
// in the taxonomy is a storage failure: logged, reported as 500, and fatal
// only to this request.
func respDomainError(c *gin.Context, err error) {
	for sentinel, status := range errStatus {
		if errors.Is(err, sentinel) {
			common.RespErrorStr(c, status.code, status.msg)
			return
		}
	}
	common.SysError("request failed: " + err.Error())
	common.RespErrorStr(c, http.StatusInternalServerError, "Internal server error")
}
