package routes

import (
	"net/http"

	"github.com/FpProDev/FP_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar repositorios (la base de datos ya está inicializada en main)
	middleware.InitAuth()
	middleware.InitInvestments()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Investment Portfolio Tracker API",
			"status":  "running",
		})
	})
	router.GET("/health", middleware.HealthCheck)

	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)

	// Precios crudos, sin autenticación
	router.GET("/price/stock/:ticker", middleware.GetStockPrice)
	router.GET("/price/crypto/:symbol", middleware.GetCryptoPrice)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/investments", middleware.CreateInvestment)
		protected.GET("/investments", middleware.GetUserInvestments)
		protected.GET("/investments/:id", middleware.GetInvestment)
		protected.PUT("/investments/:id", middleware.UpdateInvestment)
		protected.DELETE("/investments/:id", middleware.DeleteInvestment)
		protected.GET("/summary", middleware.GetPortfolioSummary)
		protected.GET("/performance", middleware.GetPerformance)

		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)
	}

	// Integración opcional con Clerk
	clerkGroup := router.Group("/clerk")
	clerkGroup.Use(middleware.ClerkAuthMiddleware())
	{
		clerkGroup.GET("/me", middleware.GetUserFromClerk)
	}
	router.POST("/webhooks/clerk", middleware.ClerkWebhookHandler)

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.GET("/users/email/:email", middleware.GetUserByEmail)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)
	}

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)
}
