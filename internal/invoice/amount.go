package invoice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// yenAmountPattern matches a currency marker (¥ or ￥), optional Unicode whitespace
// (vertical tab, NEL and line/paragraph separators included) and a
// numeric literal. The fraction is captured greedily so that literals with more
// than two fraction digits can be rejected as a whole instead of being truncated.
var yenAmountPattern = regexp.MustCompile(`[¥￥][\s\v\x{85}\p{Z}]*([0-9]+)(?:\.([0-9]+))?`)

// maxFractionDigits is the number of fraction digits an amount may carry.
const maxFractionDigits = 2

// Amount is a non-negative monetary value as it appeared in the source text.
// Raw is reused verbatim in file names, Value is used for comparison and totals.
type Amount struct {
	Raw   string
	Value decimal.Decimal
}

// ParseAmount parses a decimal literal of the form digits[.digits{1,2}].
func ParseAmount(raw string) (Amount, error) {
	if !amountLiteral.MatchString(raw) {
		return Amount{}, &AmountSyntaxError{Literal: raw}
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, &AmountSyntaxError{Literal: raw}
	}
	return Amount{Raw: raw, Value: v}, nil
}

// MustParseAmount is ParseAmount for literals known to be valid.
func MustParseAmount(raw string) Amount {
	a, err := ParseAmount(raw)
	if err != nil {
		panic(err)
	}
	return a
}

var amountLiteral = regexp.MustCompile(`^[0-9]+(?:\.[0-9]{1,2})?$`)

// String returns the literal form.
func (a Amount) String() string {
	return a.Raw
}

// Fixed renders the value with exactly two fraction digits.
func (a Amount) Fixed() string {
	return a.Value.StringFixed(maxFractionDigits)
}

// FindAmounts returns every currency-marked amount in text, in scan order.
func FindAmounts(text string) []Amount {
	matches := yenAmountPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	amounts := make([]Amount, 0, len(matches))
	for _, m := range matches {
		intPart, fracPart := m[1], m[2]
		if len(fracPart) > maxFractionDigits {
			continue
		}
		raw := intPart
		if fracPart != "" {
			raw = intPart + "." + fracPart
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		amounts = append(amounts, Amount{Raw: raw, Value: v})
	}
	return amounts
}

// ExtractMaxAmount returns the numerically largest currency-marked amount in text.
// Ties keep the first occurrence. ok is false when text holds no amount.
func ExtractMaxAmount(text string) (Amount, bool) {
	if strings.TrimSpace(text) == "" {
		return Amount{}, false
	}

	var best Amount
	found := false
	for _, a := range FindAmounts(text) {
		if !found || a.Value.GreaterThan(best.Value) {
			best = a
			found = true
		}
	}
	return best, found
}
