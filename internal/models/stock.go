package models

import "encoding/json"

func UnmarshalChartResponse(data []byte) (ChartResponse, error) {
	var r ChartResponse
	err := json.Unmarshal(data, &r)
	return r, err
}

// ChartResponse es la respuesta del endpoint de gráficos de la fuente de
// precios de acciones
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

type Chart struct {
	Result []ChartResult `json:"result"`
	Error  interface{}   `json:"error"`
}

type ChartResult struct {
	Meta ChartMeta `json:"meta"`
}

type ChartMeta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
}
