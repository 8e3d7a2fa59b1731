package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Base de la API de CoinGecko, sobrescribible en tests
var coingeckoBaseURL = "https://api.coingecko.com"

var cryptoHTTPClient = &http.Client{Timeout: 10 * time.Second}

// coingeckoIDs mapea los tickers conocidos al identificador canónico de
// CoinGecko. Los tickers que no están en la tabla pasan en minúsculas tal
// cual, sin inventar traducciones.
var coingeckoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"SOL":   "solana",
	"MATIC": "polygon",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"UNI":   "uniswap",
}

// CoinGeckoID traduce un ticker al identificador que espera CoinGecko
func CoinGeckoID(ticker string) string {
	if id, exists := coingeckoIDs[strings.ToUpper(ticker)]; exists {
		return id
	}
	return strings.ToLower(ticker)
}

// GetCryptoPrice obtiene el precio actual en USD de una criptomoneda desde
// CoinGecko. Una sola solicitud por llamada, sin reintentos ni caché.
func GetCryptoPrice(ticker string) (float64, error) {
	coinID := CoinGeckoID(ticker)
	requestURL := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd", coingeckoBaseURL, url.QueryEscape(coinID))

	resp, err := cryptoHTTPClient.Get(requestURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("respuesta %d de CoinGecko para %s", resp.StatusCode, coinID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var result map[string]map[string]float64
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	coinData, exists := result[coinID]
	if !exists {
		return 0, fmt.Errorf("no se encontraron datos para %s", coinID)
	}

	price, exists := coinData["usd"]
	if !exists {
		return 0, fmt.Errorf("la respuesta para %s no incluye el precio en usd", coinID)
	}

	return price, nil
}
