package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "financial-dashboard-backend/internal/handlers"
	"financial-dashboard-backend/internal/repository"
	invoiceservice "financial-dashboard-backend/internal/services/invoices"
	search "financial-dashboard-backend/internal/services/search"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	searchService := search.NewService(customerRepo, invoiceRepo, log)
	invoiceService := invoiceservice.NewService(invoiceRepo)

	customerHandler := handler.NewCustomerHandler(customerRepo, searchService)
	invoiceHandler := handler.NewInvoiceHandler(searchService, invoiceService)
	revenueHandler := handler.NewRevenueHandler(revenueRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	customers := api.Group("/customers")
	{
		customers.GET("", customerHandler.GetAll)
		customers.GET("/filtered", customerHandler.GetFiltered)
		customers.GET("/count", customerHandler.GetCount)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("/latest", invoiceHandler.GetLatest)
		invoices.GET("/filtered", invoiceHandler.GetFiltered)
		invoices.GET("/count", invoiceHandler.GetCount)
		invoices.GET("/statusCount", invoiceHandler.GetStatusCount)
		invoices.GET("/pages", invoiceHandler.GetPages)
		invoices.GET("/:invoiceId", invoiceHandler.GetByID)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:invoiceId", invoiceHandler.Update)
		invoices.DELETE("/:invoiceId", invoiceHandler.Delete)
	}

	revenues := api.Group("/revenues")
	{
		revenues.GET("", revenueHandler.GetAll)
	}
}
