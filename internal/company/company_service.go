package company

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-biztime/internal/events"
	"go-biztime/internal/messaging/kafka"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]CompanySummaryResponse, error)
	GetByCode(ctx context.Context, code string) (CompanyDetailResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	publisher kafka.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(db *gorm.DB, repo Repository, publisher kafka.Publisher) Service {
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	return &service{
		db:        db,
		repo:      repo,
		publisher: publisher,
		logger:    zap.L().Named("company.service"),
		now:       time.Now,
	}
}

func (s *service) GetAll(ctx context.Context) ([]CompanySummaryResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	res := make([]CompanySummaryResponse, len(companies))
	for i, c := range companies {
		res[i] = CompanySummaryResponse{Code: c.Code, Name: c.Name}
	}
	return res, nil
}

var detailTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// GetByCode reads the company and its invoice ids inside one read-only
// REPEATABLE READ transaction so both reads see the same snapshot.
func (s *service) GetByCode(ctx context.Context, code string) (CompanyDetailResponse, error) {
	var resp CompanyDetailResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		comp, err := qtx.FindByCode(ctx, code)
		if err != nil {
			return err
		}

		ids, err := qtx.FindInvoiceIDs(ctx, code)
		if err != nil {
			return err
		}
		if ids == nil {
			ids = []int64{}
		}

		resp = CompanyDetailResponse{
			Code:        comp.Code,
			Name:        comp.Name,
			Description: comp.Description,
			Invoices:    ids,
		}
		return nil
	}, detailTxOptions)
	if err != nil {
		return CompanyDetailResponse{}, mapRepositoryError(err)
	}

	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	comp, err := s.repo.Create(ctx, CompanyFields{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return CompanyResponse{}, fmt.Errorf("create company: %w", mapRepositoryError(err))
	}

	s.publish(ctx, events.CompanyCreated, comp)
	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, code string, req UpdateCompanyRequest) (CompanyResponse, error) {
	comp, err := s.repo.Update(ctx, code, CompanyFields{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.CompanyUpdated, comp)
	return mapToResponse(*comp), nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return mapRepositoryError(err)
	}

	s.publish(ctx, events.CompanyDeleted, &Company{Code: code})
	return nil
}

func (s *service) publish(ctx context.Context, eventType string, comp *Company) {
	evt := events.CompanyEvent{
		EventType:  eventType,
		Code:       comp.Code,
		Name:       comp.Name,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.CompanyLifecycleTopic, comp.Code, eventType, evt); err != nil {
		s.logger.Warn("publish company event failed",
			zap.String("event_type", eventType),
			zap.String("code", comp.Code),
			zap.Error(err),
		)
	}
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
