package models

import (
	"fmt"
	"time"
)

// TradeDateLayout is the provider's compact date form used everywhere a
// trade date travels as a string.
const TradeDateLayout = "20060102"

// ParseTradeDate parses a YYYYMMDD trade date.
func ParseTradeDate(s string) (time.Time, error) {
	t, err := time.Parse(TradeDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid trade date %q: %w", s, err)
	}
	return t, nil
}

// FormatTradeDate renders t as YYYYMMDD.
func FormatTradeDate(t time.Time) string {
	return t.Format(TradeDateLayout)
}
