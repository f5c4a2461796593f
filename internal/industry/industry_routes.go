package industry

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	industries := r.Group("/industries")
	{
		industries.GET("", h.GetAll)
		industries.POST("", h.Create)
		industries.POST("/:code/companies", h.AssociateCompany)
	}
}
