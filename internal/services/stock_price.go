package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/FpProDev/FP_Api.git/internal/models"
)

// Base de la fuente de precios de acciones, sobrescribible en tests
var stockAPIBaseURL = "https://query1.finance.yahoo.com"

var stockHTTPClient = &http.Client{Timeout: 10 * time.Second}

// GetStockPrice obtiene el último precio de cierre de una acción. Si hay un
// sufijo de mercado configurado (por ejemplo ".NS" para NSE) se intenta
// primero el símbolo con sufijo y después el símbolo tal cual. Como máximo
// dos solicitudes por llamada, sin reintentos ni caché.
func GetStockPrice(ticker string) (float64, error) {
	suffix := os.Getenv("STOCK_SUFFIX")
	if suffix != "" {
		if price, err := fetchStockClose(ticker + suffix); err == nil {
			return price, nil
		}
	}

	return fetchStockClose(ticker)
}

func fetchStockClose(symbol string) (float64, error) {
	requestURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", stockAPIBaseURL, url.PathEscape(symbol))

	resp, err := stockHTTPClient.Get(requestURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("respuesta %d de la fuente de precios para %s", resp.StatusCode, symbol)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	chart, err := models.UnmarshalChartResponse(body)
	if err != nil {
		return 0, err
	}

	if len(chart.Chart.Result) == 0 {
		return 0, fmt.Errorf("sin datos de precio para %s", symbol)
	}

	meta := chart.Chart.Result[0].Meta
	if meta.RegularMarketPrice > 0 {
		return meta.RegularMarketPrice, nil
	}
	if meta.ChartPreviousClose > 0 {
		return meta.ChartPreviousClose, nil
	}

	return 0, fmt.Errorf("la respuesta para %s no incluye un precio", symbol)
}
