package models

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

const PesoSign = "₱"

// ParsePrice splits a display price such as "₱8,500.00" into its amount and
// currency marker. The last separator counts as a decimal point only when it
// is followed by one or two digits, otherwise separators are digit grouping.
func ParsePrice(price string) (float64, string, error) {
	price = strings.TrimSpace(price)

	if price == "" {
		return 0, "", nil
	}

	currency, number := "", ""

	for _, char := range price {
		currency, number = processCharacter(char, currency, number)
	}

	float, err := strconv.ParseFloat(normalizeSeparators(number), 64)

	if err != nil {
		return 0, "", err
	}

	return float, currency, nil
}

func processCharacter(char rune, currency, number string) (string, string) {
	if isSpaceOrPlus(char) {
		return currency, number
	} else if isSeparatorChar(char) || unicode.IsDigit(char) {
		number += string(char)
	} else {
		currency += string(char)
	}
	return currency, number
}

func normalizeSeparators(number string) string {
	last := strings.LastIndexAny(number, ".,")
	if last < 0 {
		return number
	}
	fraction := number[last+1:]
	whole := strings.NewReplacer(".", "", ",", "").Replace(number[:last])
	if len(fraction) == 1 || len(fraction) == 2 {
		return whole + "." + fraction
	}
	return whole + fraction
}

func isSeparatorChar(char rune) bool {
	return char == '.' || char == ','
}

func isSpaceOrPlus(char rune) bool {
	return char == ' ' || char == '+'
}

// PriceDiff is a retailer price annotated with how far above the cheapest
// offer it sits, in whole percent.
type PriceDiff struct {
	RetailerPrice
	DiffPercent int `json:"priceDiffPercent"`
}

// BestPrice returns the cheapest offer. The first offer wins a tie.
func BestPrice(prices []RetailerPrice) (RetailerPrice, bool) {
	if len(prices) == 0 {
		return RetailerPrice{}, false
	}
	return lo.MinBy(prices, func(a, b RetailerPrice) bool {
		return a.Price < b.Price
	}), true
}

// PriceDifferences annotates every offer with its markup over the lowest one.
func PriceDifferences(prices []RetailerPrice) []PriceDiff {
	best, ok := BestPrice(prices)
	if !ok {
		return nil
	}
	return lo.Map(prices, func(p RetailerPrice, _ int) PriceDiff {
		diff := 0
		if p.Price > best.Price && best.Price > 0 {
			diff = int(math.Floor((p.Price-best.Price)/best.Price*100 + 0.5))
		}
		return PriceDiff{RetailerPrice: p, DiffPercent: diff}
	})
}

// TotalPrice sums the listed price of every selected component.
func TotalPrice(sel Selection) float64 {
	return lo.SumBy(sel, func(c *Component) float64 {
		if c == nil {
			return 0
		}
		return c.Price
	})
}

// FormatPeso renders an amount with en-PH digit grouping, e.g. "₱11,500".
func FormatPeso(amount float64, fractionDigits int) string {
	s := strconv.FormatFloat(amount, 'f', fractionDigits, 64)
	whole, frac, hasFrac := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := sign + PesoSign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}
