// Package router wires handlers, middleware and documentation into the
// HTTP engine served by cmd/api.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "moneybook/internal/docs" // Import swagger docs
	"moneybook/internal/handlers"
	"moneybook/internal/middleware"
	"moneybook/internal/services"
	"moneybook/internal/validator"
)

// Services are the domain services exposed over HTTP.
type Services struct {
	Transactions services.TransactionServicer
	Budgets      services.BudgetServicer
	SyncLog      services.SyncLogServicer
}

// Options tune the router.
type Options struct {
	// AdminAPIKey guards /api/v1/admin; empty disables those routes.
	AdminAPIKey string
}

// New builds the Gin engine with every route registered.
func New(svc Services, opts Options) *gin.Engine {
	validator.Register()

	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Budgets)
	syncHandler := handlers.NewSyncHandler(svc.Transactions, svc.SyncLog)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	adminHandler := handlers.NewAdminHandler(svc.Transactions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(opts.AdminAPIKey))
	admin.GET("/transactions", adminHandler.ListAllTransactions)
	admin.DELETE("/transactions", adminHandler.ClearTransactions)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/summary", transactionHandler.GetTransactionSummary)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	sync := protected.Group("/sync")
	sync.POST("/batch", syncHandler.BatchSync)
	sync.GET("/changes", syncHandler.GetChanges)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/active", budgetHandler.GetActiveBudgets)
	budgets.PUT("/monthly", budgetHandler.SetMonthlyBudget)
	budgets.GET("/monthly/usage", budgetHandler.GetMonthlyUsage)
	budgets.POST("/can-consume", budgetHandler.CanConsume)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/stats", budgetHandler.GetBudgetStats)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
