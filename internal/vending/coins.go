package vending

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Denominations is the fixed set of coin values the machine accepts.
var Denominations = map[int64]bool{
	1:    true,
	5:    true,
	10:   true,
	20:   true,
	50:   true,
	100:  true,
	200:  true,
	500:  true,
	1000: true,
}

// CoinResult reports the outcome of one coin-insertion operation.
// Rejected tokens did not abort the rest of the input; Accepted is the
// sum of the valid coins only.
type CoinResult struct {
	Accepted    decimal.Decimal
	Accumulated decimal.Decimal
	Rejected    []string
}

// ParseCoins splits input on whitespace and sums the tokens that are
// valid coin denominations. Unrecognized tokens, numeric or not, are
// returned as rejected without affecting the accepted total.
func ParseCoins(input string) (decimal.Decimal, []string) {
	accepted := decimal.Zero
	var rejected []string

	for _, token := range strings.Fields(input) {
		coin, err := strconv.ParseInt(token, 10, 64)
		if err != nil || !Denominations[coin] {
			rejected = append(rejected, token)
			continue
		}
		accepted = accepted.Add(decimal.NewFromInt(coin))
	}

	return accepted, rejected
}
