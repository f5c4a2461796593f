package invoice

import (
	"fmt"
	invoiceerrors "go-biztime/internal/invoice/errors"
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
	l := zap.L().Named("invoice.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.handler")
	}
	return &Handler{service: service, logger: l}
}

// bindID treats a malformed or non-positive id like an id that matches no
// row.
func (h *Handler) bindID(c *gin.Context) (int64, bool) {
	var uri InvoiceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.logger.Debug("http invoice id rejected", zap.String("id", c.Param("id")), zap.Error(err))
		_ = c.Error(invoiceerrors.ErrInvoiceNotFound.With(err))
		return 0, false
	}
	return uri.ID, true
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "invoices", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "invoice", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create invoice bind failed", zap.Error(err))
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusCreated, "invoice", resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update invoice bind failed", zap.Error(err))
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Resource(c, http.StatusOK, "invoice", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.Deleted(c, http.StatusOK)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	doc, err := h.service.RenderPDF(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", doc)
}
