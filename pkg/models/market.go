package models

// DailyBar is one OHLCV row read back from an ODS table. TradeDate uses the
// provider's compact YYYYMMDD form.
type DailyBar struct {
	Code      string  `json:"ts_code"`
	TradeDate string  `json:"trade_date"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"vol"`
	Amount    float64 `json:"amount"`
}

// TradingDay is one trade-calendar row.
type TradingDay struct {
	Exchange string `json:"exchange"`
	CalDate  string `json:"cal_date"`
	IsOpen   bool   `json:"is_open"`
}
