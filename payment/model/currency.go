package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatVND renders an amount of dong with ',' thousands separators,
// e.g. 250000 -> "250,000 VNĐ".
func FormatVND(amount int64) string {
	return amountPrinter.Sprintf("%d", amount) + " VNĐ"
}
