package model

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency describes one supported invoice currency. Display follows the
// locale's digit grouping; the symbol (when present) is prefixed with a
// single space.
type Currency struct {
	Code   string
	Symbol string
	Name   string
	Locale string
}

// SupportedCurrencies is the fixed currency table. KWD deliberately carries
// no symbol, so formatted dinar amounts are plain numbers.
var SupportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "Dollar", Locale: "en-US"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Locale: "de-DE"},
	{Code: "GBP", Symbol: "£", Name: "Pound", Locale: "en-GB"},
	{Code: "INR", Symbol: "₹", Name: "Rupees", Locale: "en-IN"},
	{Code: "JPY", Symbol: "¥", Name: "Yen", Locale: "ja-JP"},
	{Code: "KWD", Symbol: "", Name: "Dinar", Locale: "ar-KW"},
}

// CurrencyByCode returns the table entry for code, or nil for unknown codes.
func CurrencyByCode(code string) *Currency {
	for i := range SupportedCurrencies {
		if SupportedCurrencies[i].Code == code {
			return &SupportedCurrencies[i]
		}
	}
	return nil
}

// IsSupportedCurrency reports whether code appears in the currency table.
func IsSupportedCurrency(code string) bool {
	return CurrencyByCode(code) != nil
}

// FormatAmount renders amount with exactly two fraction digits using the
// grouping rules of the currency's locale. Unknown codes fall back to a
// plain two-decimal number without a symbol. No conversion happens here;
// the amount is assumed to already be in the given currency.
func FormatAmount(amount decimal.Decimal, code string) string {
	cur := CurrencyByCode(code)
	if cur == nil {
		return amount.StringFixed(2)
	}

	formatted := localizeFixed2(amount.Round(2), cur.Locale)
	if cur.Symbol == "" {
		return formatted
	}
	return cur.Symbol + " " + formatted
}

// localizeFixed2 formats a two-decimal amount for a locale without going
// through float64: the integer units and the two fraction digits are handed
// to the printer as int64, which x/text converts digit-exact. Amounts whose
// units overflow int64 fall back to the unlocalized fixed string.
func localizeFixed2(n decimal.Decimal, locale string) string {
	units := n.IntPart()
	if !n.Truncate(0).Equal(decimal.NewFromInt(units)) {
		return n.StringFixed(2)
	}
	frac := n.Sub(decimal.NewFromInt(units)).Abs().Shift(2).IntPart()

	p := message.NewPrinter(language.Make(locale))
	intStr := p.Sprint(number.Decimal(units))
	if n.IsNegative() && units == 0 {
		intStr = "-" + intStr
	}

	// Locale decimal separator: the runes of "1.5" between the digit glyphs.
	probe := []rune(p.Sprint(number.Decimal(1.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1))))
	sep := string(probe[1 : len(probe)-1])

	// Zero-padded fraction in the locale's digit glyphs: format 1xx and
	// drop the leading glyph.
	padded := []rune(p.Sprint(number.Decimal(100 + frac)))
	return intStr + sep + string(padded[1:])
}
