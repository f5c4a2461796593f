package invoice

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	invoices := r.Group("/invoices")
	{
		invoices.GET("", h.GetAll)
		invoices.POST("", h.Create)
		invoices.GET("/:id", h.GetByID)
		invoices.GET("/:id/pdf", h.DownloadPDF)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
	}
}
