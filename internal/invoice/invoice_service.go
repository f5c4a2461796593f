package invoice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-biztime/internal/events"
	invoiceerrors "go-biztime/internal/invoice/errors"
	"go-biztime/internal/messaging/kafka"

	"go.uber.org/zap"
)

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]InvoiceSummaryResponse, error)
	GetByID(ctx context.Context, id int64) (InvoiceDetailResponse, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id int64) error
	RenderPDF(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	repo      Repository
	publisher kafka.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(repo Repository, publisher kafka.Publisher) Service {
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    zap.L().Named("invoice.service"),
		now:       time.Now,
	}
}

func (s *service) GetAll(ctx context.Context) ([]InvoiceSummaryResponse, error) {
	invoices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	res := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = InvoiceSummaryResponse{ID: inv.ID, CompCode: inv.CompCode}
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (InvoiceDetailResponse, error) {
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return InvoiceDetailResponse{}, mapRepositoryError(err)
	}

	if detail.Name == nil {
		s.logger.Error("invoice without company", zap.Int64("invoice_id", id))
		return InvoiceDetailResponse{}, invoiceerrors.ErrInvoiceCompanyMissing
	}

	return InvoiceDetailResponse{
		ID:          detail.ID,
		Amt:         detail.Amt,
		Paid:        detail.Paid,
		AddDate:     detail.AddDate,
		PaidDate:    detail.PaidDate,
		Name:        *detail.Name,
		Description: detail.Description,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error) {
	inv, err := s.repo.Create(ctx, InvoiceFields{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("create invoice: %w", mapRepositoryError(err))
	}

	s.publish(ctx, events.InvoiceCreated, inv)
	return mapToResponse(*inv), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (InvoiceResponse, error) {
	inv, err := s.repo.Update(ctx, id, InvoiceFields{
		Amt:  req.Amt,
		Paid: req.Paid,
	})
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.InvoiceUpdated, inv)
	return mapToResponse(*inv), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.publish(ctx, events.InvoiceDeleted, &Invoice{ID: id})
	return nil
}

func (s *service) RenderPDF(ctx context.Context, id int64) ([]byte, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := renderInvoicePDF(detail)
	if err != nil {
		return nil, invoiceerrors.ErrInvoiceRenderFailed.With(err)
	}
	return doc, nil
}

func (s *service) publish(ctx context.Context, eventType string, inv *Invoice) {
	evt := events.InvoiceEvent{
		EventType:  eventType,
		InvoiceID:  inv.ID,
		CompCode:   inv.CompCode,
		Amt:        inv.Amt,
		Paid:       inv.Paid,
		OccurredAt: s.now().UTC(),
	}
	key := strconv.FormatInt(inv.ID, 10)
	if err := s.publisher.Publish(ctx, events.InvoiceLifecycleTopic, key, eventType, evt); err != nil {
		s.logger.Warn("publish invoice event failed",
			zap.String("event_type", eventType),
			zap.Int64("invoice_id", inv.ID),
			zap.Error(err),
		)
	}
}

func mapToResponse(inv Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
