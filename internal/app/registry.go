package app

import (
	"go-biztime/internal/company"
	"go-biztime/internal/industry"
	"go-biztime/internal/invoice"
	"go-biztime/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router gin.IRouter,
	db *gorm.DB,
	publisher kafka.Publisher,
) {
	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	invoiceRepo := invoice.NewRepository(db)
	industryRepo := industry.NewRepository(db)

	// --- Services ---
	companyService := company.NewService(db, companyRepo, publisher)
	invoiceService := invoice.NewService(invoiceRepo, publisher)
	industryService := industry.NewService(industryRepo, publisher)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	invoiceHandler := invoice.NewHandler(invoiceService)
	industryHandler := industry.NewHandler(industryService)

	// --- Routes Registration ---
	company.RegisterRoutes(router, companyHandler)
	invoice.RegisterRoutes(router, invoiceHandler)
	industry.RegisterRoutes(router, industryHandler)
}
