package route

import (
	"github.com/gin-gonic/gin"

	"files-manager/api/handler"
	"files-manager/api/middleware"
)

// SetApiRouter registers the HTTP surface. Content serving does its own
// optional authentication, everything else under /files requires a token.
func SetApiRouter(router *gin.Engine, h *handler.Handler, rateLimit int) {
	api := router.Group("/")
	api.Use(middleware.GlobalAPIRateLimit(rateLimit))
	{
		api.GET("/status", h.GetStatus)
		api.GET("/stats", h.GetStats)
		api.POST("/users", h.PostNewUser)
		api.GET("/connect", h.GetConnect)
		api.GET("/disconnect", h.GetDisconnect)
		api.GET("/files/:id/data", h.GetFileData)

		authorized := api.Group("/")
		authorized.Use(middleware.TokenAuth(h.Svc))
		{
			authorized.GET("/users/me", h.GetMe)
			authorized.POST("/files", h.PostUpload)
			authorized.GET("/files", h.GetIndex)
			authorized.GET("/files/:id", h.GetShow)
			authorized.PUT("/files/:id/publish", h.PutPublish)
			authorized.PUT("/files/:id/unpublish", h.PutUnpublish)
		}
	}
}
