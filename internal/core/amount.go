// Package core holds the ledger's domain model: record validation,
// filter predicates, and the pure aggregation functions.
//
// This file contains amount parsing. Amounts are signed: zero and
// negative values pass validation deliberately, since the ledger treats
// refunds and corrections as ordinary entries.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to a float64 amount.
//
// Parsing goes through shopspring/decimal rather than strconv so that
// only finite decimal notation is accepted: "NaN", "Inf" and stray text
// all fail with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("-5")     -> -5, nil
//	ParseAmount("twenty") -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return d.InexactFloat64(), nil
}
