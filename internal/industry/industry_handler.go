package industry

import (
	"go-biztime/internal/shared/apperror"
	"go-biztime/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("industry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("industry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "industries", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create industry bind failed", zap.Error(err))
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusCreated, "industry", resp)
}

func (h *Handler) AssociateCompany(c *gin.Context) {
	code := c.Param("code")

	var req AssociateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http associate company bind failed", zap.String("industry_code", code), zap.Error(err))
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AssociateCompany(c.Request.Context(), code, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusCreated, "association", resp)
}
