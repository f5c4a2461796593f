package company

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
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "companies", resp)
}

func (h *Handler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	h.logger.Debug("http get company", zap.String("code", code))

	resp, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "company", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create company bind failed", zap.Error(err))
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusCreated, "company", resp)
}

func (h *Handler) Update(c *gin.Context) {
	code := c.Param("code")
	h.logger.Debug("http update company", zap.String("code", code))

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update company bind failed", zap.Error(err))
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), code, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "company", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	code := c.Param("code")
	h.logger.Debug("http delete company", zap.String("code", code))

	if err := h.service.Delete(c.Request.Context(), code); err != nil {
		_ = c.Error(err)
		return
	}

	response.Deleted(c, http.StatusOK)
}
