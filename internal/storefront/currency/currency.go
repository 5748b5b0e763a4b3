package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// カタログはUSD建て。表示はインドルピー（固定レート）。
const USDToINR = 83.0

const rupee = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice は価格をルピー表示にする。
// 整数になる金額は小数なし、それ以外は小数2桁。桁区切りはen-IN式。
func FormatPrice(price float64) string {
	inr := price * USDToINR

	if math.Mod(inr, 1) == 0 {
		return rupee + printer.Sprintf("%v", number.Decimal(inr, number.MaxFractionDigits(0)))
	}

	return FormatPriceWithDecimals(price)
}

// FormatPriceWithDecimals は常に小数2桁で表示する。
func FormatPriceWithDecimals(price float64) string {
	inr := price * USDToINR
	return rupee + printer.Sprintf("%v",
		number.Decimal(inr, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
