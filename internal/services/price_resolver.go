package services

import (
	"log"
	"strings"
	"sync"

	"github.com/FpProDev/FP_Api.git/internal/models"
)

// ResolvePrice obtiene el precio actual de un activo según su tipo.
// Cualquier fallo de red, timeout o respuesta malformada se convierte en
// ausencia: el resolvedor nunca propaga errores de cotización al caller.
func ResolvePrice(assetType, ticker string) (float64, bool) {
	if strings.TrimSpace(ticker) == "" {
		return 0, false
	}

	var price float64
	var err error

	switch assetType {
	case models.AssetTypeStock:
		price, err = GetStockPrice(ticker)
	case models.AssetTypeCrypto:
		price, err = GetCryptoPrice(ticker)
	default:
		return 0, false
	}

	if err != nil {
		log.Printf("No se pudo resolver el precio de %s (%s): %v", ticker, assetType, err)
		return 0, false
	}

	return price, true
}

// ResolveInvestmentPrices resuelve los precios de todas las inversiones en
// paralelo y anota cada una con sus valores derivados. Cada inversión es
// independiente: que falle el precio de una no afecta a las demás.
func ResolveInvestmentPrices(investments []models.Investment) {
	var wg sync.WaitGroup

	for i := range investments {
		wg.Add(1)
		go func(inv *models.Investment) {
			defer wg.Done()
			price, ok := ResolvePrice(inv.AssetType, inv.Ticker)
			ValuateInvestment(inv, price, ok)
		}(&investments[i])
	}

	wg.Wait()
}
