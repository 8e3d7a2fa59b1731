package services

import (
	"github.com/FpProDev/FP_Api.git/internal/models"
)

// ValuateInvestment calcula los campos derivados de una inversión a partir
// del precio resuelto. Es determinista y no hace I/O: con ok en false los
// campos derivados quedan en null, nunca se fabrica una cifra.
func ValuateInvestment(inv *models.Investment, price float64, ok bool) {
	if !ok {
		inv.CurrentPrice = nil
		inv.GainLoss = nil
		inv.GainLossPct = nil
		return
	}

	invested := inv.Invested()
	currentValue := inv.Quantity * price
	gainLoss := currentValue - invested

	var gainLossPct float64
	if invested > 0 {
		gainLossPct = (gainLoss / invested) * 100
	}

	inv.CurrentPrice = &price
	inv.GainLoss = &gainLoss
	inv.GainLossPct = &gainLossPct
}

// SummarizePortfolio reduce las inversiones ya valuadas al resumen del
// portafolio. El monto invertido se suma siempre; si una inversión no tiene
// precio, su monto invertido cuenta también como valor actual, así una
// cotización caída no se registra como pérdida ni desaparece del total.
// La suma es conmutativa: el orden de las inversiones no cambia el resultado.
func SummarizePortfolio(investments []models.Investment) models.PortfolioSummary {
	var totalInvested, currentValue float64

	for i := range investments {
		invested := investments[i].Invested()
		totalInvested += invested

		if investments[i].CurrentPrice != nil {
			currentValue += investments[i].Quantity * *investments[i].CurrentPrice
		} else {
			currentValue += invested
		}
	}

	gainLoss := currentValue - totalInvested

	var gainLossPct float64
	if totalInvested > 0 {
		gainLossPct = (gainLoss / totalInvested) * 100
	}

	return models.PortfolioSummary{
		TotalInvested: totalInvested,
		CurrentValue:  currentValue,
		GainLoss:      gainLoss,
		GainLossPct:   gainLossPct,
		Currency:      "USD",
	}
}
