package industry_test

import (
	"context"
	"errors"
	"testing"

	"go-biztime/internal/events"
	"go-biztime/internal/industry"
	industryerrors "go-biztime/internal/industry/errors"
	industryMock "go-biztime/internal/industry/mock"
	kafkaMock "go-biztime/internal/messaging/kafka/mock"
	"go-biztime/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   industry.Service
	repo      *industryMock.MockRepository
	publisher *kafkaMock.MockPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := industryMock.NewMockRepository(ctrl)
	publisher := kafkaMock.NewMockPublisher(ctrl)

	return &serviceDeps{
		service:   industry.NewService(repo, publisher),
		repo:      repo,
		publisher: publisher,
	}
}

func TestCode(t *testing.T) {
	cases := map[string]string{
		"Information Technology": "information-technology",
		"Accounting":             "accounting",
		"  Oil/Gas  ":            "oil-gas",
	}
	for in, want := range cases {
		assert.Equal(t, want, industry.Code(in), in)
	}
}

func TestService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().FindAllWithCompanies(ctx).Return([]industry.IndustryCompanies{
			{Industry: "Accounting", IndustryCode: "acct", CompanyCodes: nil},
			{Industry: "Technology", IndustryCode: "tech", CompanyCodes: pq.StringArray{"apple", "ibm"}},
		}, nil)

		res, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []industry.IndustrySummaryResponse{
			{Industry: "Accounting", IndustryCode: "acct", CompanyCodes: []string{}},
			{Industry: "Technology", IndustryCode: "tech", CompanyCodes: []string{"apple", "ibm"}},
		}, res)
	})

	t.Run("db failure", func(t *testing.T) {
		deps.repo.EXPECT().FindAllWithCompanies(ctx).Return(nil, errors.New("timeout"))

		_, err := deps.service.GetAll(ctx)

		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}

func TestService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	name := "Information Technology"

	t.Run("derives code from name", func(t *testing.T) {
		deps.repo.EXPECT().Create(ctx, "information-technology", &name).
			Return(&industry.Industry{ID: 1, Code: "information-technology", Industry: name}, nil)
		deps.publisher.EXPECT().
			Publish(ctx, events.IndustryLifecycleTopic, "information-technology", events.IndustryCreated, gomock.Any()).
			Return(nil)

		res, err := deps.service.Create(ctx, industry.CreateIndustryRequest{Industry: &name})

		assert.NoError(t, err)
		assert.Equal(t, industry.IndustryResponse{Code: "information-technology", Industry: name}, res)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		deps.repo.EXPECT().Create(ctx, "information-technology", &name).
			Return(nil, &pgconn.PgError{Code: "23505"})

		_, err := deps.service.Create(ctx, industry.CreateIndustryRequest{Industry: &name})

		assert.ErrorIs(t, err, industryerrors.ErrIndustryAlreadyExists)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("name without letters or digits", func(t *testing.T) {
		for _, in := range []string{"", "!!!", " - "} {
			_, err := deps.service.Create(ctx, industry.CreateIndustryRequest{Industry: &in})

			assert.ErrorIs(t, err, industryerrors.ErrIndustryCodeEmpty, in)
			assert.Equal(t, 400, apperror.ToHTTP(err).Status, in)
		}
	})

	t.Run("missing name reaches the database", func(t *testing.T) {
		deps.repo.EXPECT().Create(ctx, "", nil).
			Return(nil, &pgconn.PgError{Code: "23502"})

		_, err := deps.service.Create(ctx, industry.CreateIndustryRequest{})

		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}

func TestService_AssociateCompany(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	apple := "apple"

	t.Run("linked", func(t *testing.T) {
		deps.repo.EXPECT().AssociateCompany(ctx, "tech", &apple).
			Return(&industry.CompanyIndustry{IndustryID: 1, CompanyCode: "apple"}, nil)
		deps.publisher.EXPECT().
			Publish(ctx, events.IndustryLifecycleTopic, "tech", events.IndustryCompanyAssociated, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, evt any) error {
				assert.Equal(t, "apple", evt.(events.IndustryEvent).CompCode)
				return nil
			})

		res, err := deps.service.AssociateCompany(ctx, "tech", industry.AssociateCompanyRequest{CompCode: &apple})

		assert.NoError(t, err)
		assert.Equal(t, industry.AssociationResponse{IndustryCode: "tech", CompCode: "apple"}, res)
	})

	t.Run("unknown industry", func(t *testing.T) {
		deps.repo.EXPECT().AssociateCompany(ctx, "nope", &apple).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AssociateCompany(ctx, "nope", industry.AssociateCompanyRequest{CompCode: &apple})

		assert.ErrorIs(t, err, industryerrors.ErrIndustryNotFound)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})

	t.Run("already linked", func(t *testing.T) {
		deps.repo.EXPECT().AssociateCompany(ctx, "tech", &apple).Return(nil, &pgconn.PgError{Code: "23505"})

		_, err := deps.service.AssociateCompany(ctx, "tech", industry.AssociateCompanyRequest{CompCode: &apple})

		assert.ErrorIs(t, err, industryerrors.ErrAssociationAlreadyExists)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("unknown company", func(t *testing.T) {
		deps.repo.EXPECT().AssociateCompany(ctx, "tech", &apple).Return(nil, &pgconn.PgError{Code: "23503"})

		_, err := deps.service.AssociateCompany(ctx, "tech", industry.AssociateCompanyRequest{CompCode: &apple})

		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}
