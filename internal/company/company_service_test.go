package company_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-biztime/internal/company"
	companyerrors "go-biztime/internal/company/errors"
	companyMock "go-biztime/internal/company/mock"
	"go-biztime/internal/events"
	kafkaMock "go-biztime/internal/messaging/kafka/mock"
	"go-biztime/internal/shared/apperror"
	"go-biztime/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   company.Service
	repo      *companyMock.MockRepository
	publisher *kafkaMock.MockPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := newGormMock(t)
	repo := companyMock.NewMockRepository(ctrl)
	publisher := kafkaMock.NewMockPublisher(ctrl)

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   company.NewService(db, repo, publisher),
		repo:      repo,
		publisher: publisher,
	}
}

func TestService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().FindAll(ctx).Return([]company.Company{
			{Code: "apple", Name: "Apple Computer"},
		}, nil)

		res, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []company.CompanySummaryResponse{{Code: "apple", Name: "Apple Computer"}}, res)
	})

	t.Run("empty table gives empty list", func(t *testing.T) {
		deps.repo.EXPECT().FindAll(ctx).Return(nil, nil)

		res, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("db failure", func(t *testing.T) {
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection reset"))

		_, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}

func TestService_GetByCode(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("company with invoices", func(t *testing.T) {
		desc := "Maker of OSX."
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(ctx, "apple").Return(&company.Company{
			Code: "apple", Name: "Apple Computer", Description: &desc,
		}, nil)
		deps.repo.EXPECT().FindInvoiceIDs(ctx, "apple").Return([]int64{1, 2, 3}, nil)
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.GetByCode(ctx, "apple")

		assert.NoError(t, err)
		assert.Equal(t, company.CompanyDetailResponse{
			Code:        "apple",
			Name:        "Apple Computer",
			Description: &desc,
			Invoices:    []int64{1, 2, 3},
		}, res)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("company without invoices", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(ctx, "ibm").Return(&company.Company{Code: "ibm", Name: "IBM"}, nil)
		deps.repo.EXPECT().FindInvoiceIDs(ctx, "ibm").Return(nil, nil)
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.GetByCode(ctx, "ibm")

		assert.NoError(t, err)
		assert.Equal(t, []int64{}, res.Invoices)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(ctx, "nope").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.GetByCode(ctx, "nope")

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

// txRecorder remembers the options of every transaction gorm opens.
type txRecorder struct {
	*sql.DB
	opts []*sql.TxOptions
}

func (r *txRecorder) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	r.opts = append(r.opts, opts)
	return r.DB.BeginTx(ctx, opts)
}

func TestService_GetByCode_SnapshotTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	recorder := &txRecorder{DB: sqlDB}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: recorder}), connection.GormConfig())
	assert.NoError(t, err)

	repo := companyMock.NewMockRepository(ctrl)
	svc := company.NewService(db, repo, kafkaMock.NewMockPublisher(ctrl))

	sqlMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().FindByCode(ctx, "apple").Return(&company.Company{Code: "apple", Name: "Apple Computer"}, nil)
	repo.EXPECT().FindInvoiceIDs(ctx, "apple").Return([]int64{1}, nil)
	sqlMock.ExpectCommit()

	_, err = svc.GetByCode(ctx, "apple")

	assert.NoError(t, err)
	if assert.Len(t, recorder.opts, 1) {
		assert.Equal(t, sql.LevelRepeatableRead, recorder.opts[0].Isolation)
		assert.True(t, recorder.opts[0].ReadOnly)
	}
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	code, name, desc := "ibm", "IBM", "Tech company"

	t.Run("success publishes created event", func(t *testing.T) {
		deps.repo.EXPECT().Create(ctx, company.CompanyFields{
			Code: &code, Name: &name, Description: &desc,
		}).Return(&company.Company{Code: code, Name: name, Description: &desc}, nil)

		deps.publisher.EXPECT().
			Publish(ctx, events.CompanyLifecycleTopic, "ibm", events.CompanyCreated, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, evt any) error {
				e, ok := evt.(events.CompanyEvent)
				assert.True(t, ok)
				assert.Equal(t, "IBM", e.Name)
				return nil
			})

		res, err := deps.service.Create(ctx, company.CreateCompanyRequest{
			Code: &code, Name: &name, Description: &desc,
		})

		assert.NoError(t, err)
		assert.Equal(t, company.CompanyResponse{Code: "ibm", Name: "IBM", Description: &desc}, res)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&company.Company{Code: code, Name: name}, nil)
		deps.publisher.EXPECT().
			Publish(ctx, events.CompanyLifecycleTopic, "ibm", events.CompanyCreated, gomock.Any()).
			Return(errors.New("broker down"))

		res, err := deps.service.Create(ctx, company.CreateCompanyRequest{Code: &code, Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "ibm", res.Code)
	})

	t.Run("duplicate code stays a generic failure", func(t *testing.T) {
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23505"})

		_, err := deps.service.Create(ctx, company.CreateCompanyRequest{Code: &code, Name: &name})

		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}

func TestService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	name, desc := "Apple Inc", "Phones"

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().Update(ctx, "apple", company.CompanyFields{Name: &name, Description: &desc}).
			Return(&company.Company{Code: "apple", Name: name, Description: &desc}, nil)
		deps.publisher.EXPECT().
			Publish(ctx, events.CompanyLifecycleTopic, "apple", events.CompanyUpdated, gomock.Any()).
			Return(nil)

		res, err := deps.service.Update(ctx, "apple", company.UpdateCompanyRequest{Name: &name, Description: &desc})

		assert.NoError(t, err)
		assert.Equal(t, "Apple Inc", res.Name)
	})

	t.Run("not found publishes nothing", func(t *testing.T) {
		deps.repo.EXPECT().Update(ctx, "nope", gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, "nope", company.UpdateCompanyRequest{Name: &name})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().Delete(ctx, "apple").Return(nil)
		deps.publisher.EXPECT().
			Publish(ctx, events.CompanyLifecycleTopic, "apple", events.CompanyDeleted, gomock.Any()).
			Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, "apple"))
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().Delete(ctx, "nope").Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, "nope")

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestNewService_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _ := newGormMock(t)
	repo := companyMock.NewMockRepository(ctrl)
	svc := company.NewService(db, repo, nil)

	repo.EXPECT().Delete(gomock.Any(), "apple").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "apple"))
}
