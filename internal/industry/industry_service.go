package industry

import (
	"context"
	"fmt"
	"time"

	"go-biztime/internal/events"
	industryerrors "go-biztime/internal/industry/errors"
	"go-biztime/internal/messaging/kafka"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

//go:generate mockgen -source=industry_service.go -destination=mock/industry_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]IndustrySummaryResponse, error)
	Create(ctx context.Context, req CreateIndustryRequest) (IndustryResponse, error)
	AssociateCompany(ctx context.Context, industryCode string, req AssociateCompanyRequest) (AssociationResponse, error)
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
		logger:    zap.L().Named("industry.service"),
		now:       time.Now,
	}
}

// Code derives the industry code from its display name.
func Code(industry string) string {
	return slug.Make(industry)
}

func (s *service) GetAll(ctx context.Context) ([]IndustrySummaryResponse, error) {
	rows, err := s.repo.FindAllWithCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}

	res := make([]IndustrySummaryResponse, len(rows))
	for i, row := range rows {
		codes := []string(row.CompanyCodes)
		if codes == nil {
			codes = []string{}
		}
		res[i] = IndustrySummaryResponse{
			Industry:     row.Industry,
			IndustryCode: row.IndustryCode,
			CompanyCodes: codes,
		}
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, req CreateIndustryRequest) (IndustryResponse, error) {
	var code string
	if req.Industry != nil {
		code = Code(*req.Industry)
		if code == "" {
			return IndustryResponse{}, industryerrors.ErrIndustryCodeEmpty
		}
	}

	ind, err := s.repo.Create(ctx, code, req.Industry)
	if err != nil {
		return IndustryResponse{}, fmt.Errorf("create industry: %w", mapCreateError(err))
	}

	s.publish(ctx, events.IndustryEvent{
		EventType:    events.IndustryCreated,
		IndustryCode: ind.Code,
		Industry:     ind.Industry,
	})
	return IndustryResponse{Code: ind.Code, Industry: ind.Industry}, nil
}

func (s *service) AssociateCompany(ctx context.Context, industryCode string, req AssociateCompanyRequest) (AssociationResponse, error) {
	link, err := s.repo.AssociateCompany(ctx, industryCode, req.CompCode)
	if err != nil {
		return AssociationResponse{}, mapAssociateError(err)
	}

	s.publish(ctx, events.IndustryEvent{
		EventType:    events.IndustryCompanyAssociated,
		IndustryCode: industryCode,
		CompCode:     link.CompanyCode,
	})
	return AssociationResponse{IndustryCode: industryCode, CompCode: link.CompanyCode}, nil
}

func (s *service) publish(ctx context.Context, evt events.IndustryEvent) {
	evt.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, events.IndustryLifecycleTopic, evt.IndustryCode, evt.EventType, evt); err != nil {
		s.logger.Warn("publish industry event failed",
			zap.String("event_type", evt.EventType),
			zap.String("industry_code", evt.IndustryCode),
			zap.Error(err),
		)
	}
}
