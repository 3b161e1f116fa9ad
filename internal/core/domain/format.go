package domain

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	pricePrinter = message.NewPrinter(language.AmericanEnglish)
	badgeCaser   = cases.Upper(language.English)
)

// FormatPrice форматирует цену с разделителями разрядов: 450000 -> "$450,000".
func FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return pricePrinter.Sprintf("$%d", int64(price))
	}
	return pricePrinter.Sprintf("$%.2f", price)
}

// StatusBadge - текст бейджа статуса заявки или объекта.
func StatusBadge(status string) string {
	return badgeCaser.String(status)
}
