package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FpProDev/FP_Api.git/internal/database"
	"github.com/FpProDev/FP_Api.git/internal/models"
	"github.com/FpProDev/FP_Api.git/internal/repository"
	"github.com/FpProDev/FP_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	investmentRepo *repository.InvestmentRepository
	snapshotRepo   *repository.SnapshotRepository
)

func InitInvestments() {
	investmentRepo = repository.NewInvestmentRepository(database.DB)
	snapshotRepo = repository.NewSnapshotRepository(database.DB)
}

// CreateInvestment registra una nueva inversión para el usuario autenticado
func CreateInvestment(c *gin.Context) {
	var req models.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")

	inv, err := models.NewInvestment(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := investmentRepo.CreateInvestment(inv); err != nil {
		log.Printf("Error al crear la inversión para %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la inversión"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Inversión creada exitosamente",
		"investment": inv,
	})
}

// GetUserInvestments obtiene las inversiones del usuario con sus precios
// actuales y ganancia/pérdida por posición
func GetUserInvestments(c *gin.Context) {
	userID := c.GetString("userId")

	investments, err := investmentRepo.GetUserInvestments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las inversiones"})
		return
	}

	services.ResolveInvestmentPrices(investments)

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// GetInvestment obtiene una inversión específica con su precio actual
func GetInvestment(c *gin.Context) {
	userID := c.GetString("userId")
	investmentID := c.Param("id")

	inv, err := investmentRepo.GetInvestment(userID, investmentID)
	if err != nil {
		if errors.Is(err, repository.ErrInvestmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inversión no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la inversión"})
		return
	}

	price, ok := services.ResolvePrice(inv.AssetType, inv.Ticker)
	services.ValuateInvestment(inv, price, ok)

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// UpdateInvestment actualiza la cantidad y/o el precio de compra de una inversión
func UpdateInvestment(c *gin.Context) {
	userID := c.GetString("userId")
	investmentID := c.Param("id")

	var req models.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Quantity == nil && req.BuyPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay campos válidos para actualizar"})
		return
	}

	inv, err := investmentRepo.UpdateInvestment(userID, investmentID, req.Quantity, req.BuyPrice)
	if err != nil {
		if errors.Is(err, repository.ErrInvestmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inversión no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la inversión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Inversión actualizada exitosamente",
		"investment": inv,
	})
}

// DeleteInvestment elimina una inversión del usuario
func DeleteInvestment(c *gin.Context) {
	userID := c.GetString("userId")
	investmentID := c.Param("id")

	if err := investmentRepo.DeleteInvestment(userID, investmentID); err != nil {
		if errors.Is(err, repository.ErrInvestmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inversión no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la inversión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inversión eliminada exitosamente"})
}

// GetPortfolioSummary calcula el resumen del portafolio del usuario con
// precios frescos y guarda el snapshot del día
func GetPortfolioSummary(c *gin.Context) {
	userID := c.GetString("userId")

	investments, err := investmentRepo.GetUserInvestments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las inversiones"})
		return
	}

	services.ResolveInvestmentPrices(investments)
	summary := services.SummarizePortfolio(investments)

	// El historial no bloquea la respuesta del resumen
	if err := snapshotRepo.SaveDailySnapshot(userID, summary); err != nil {
		log.Printf("No se pudo guardar el snapshot de %s: %v", userID, err)
	}

	c.JSON(http.StatusOK, summary)
}

// GetPerformance devuelve el historial de snapshots del portafolio
func GetPerformance(c *gin.Context) {
	userID := c.GetString("userId")

	limitStr := c.DefaultQuery("limit", "30")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 30
	}

	snapshots, err := snapshotRepo.GetUserSnapshots(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el historial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"performance": snapshots})
}

// GetStockPrice devuelve el precio actual de una acción. El precio queda en
// null si la cotización no está disponible.
func GetStockPrice(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))

	response := models.PriceResponse{
		Ticker:    ticker,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if price, ok := services.ResolvePrice(models.AssetTypeStock, ticker); ok {
		response.Price = &price
	}

	c.JSON(http.StatusOK, response)
}

// GetCryptoPrice devuelve el precio actual de una criptomoneda
func GetCryptoPrice(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))

	response := models.PriceResponse{
		Ticker:    symbol,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if price, ok := services.ResolvePrice(models.AssetTypeCrypto, symbol); ok {
		response.Price = &price
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck verifica la conexión con la base de datos
func HealthCheck(c *gin.Context) {
	if err := database.DB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
