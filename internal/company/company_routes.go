package company

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	companies := r.Group("/companies")
	{
		companies.GET("", h.GetAll)
		companies.POST("", h.Create)
		companies.GET("/:code", h.GetByCode)
		companies.PUT("/:code", h.Update)
		companies.DELETE("/:code", h.Delete)
	}
}
