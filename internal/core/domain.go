package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "2006-01-02"

// MonthLayout is the textual key used for month-level grouping.
const MonthLayout = "2006-01"

type (
	// Date is a calendar date normalized to UTC midnight.
	Date struct {
		time.Time
	}

	// Record is a single immutable ledger entry. ID is zero until the
	// store assigns one at insertion time.
	Record struct {
		ID       int64
		Date     Date
		Category string
		Amount   float64
		Notes    string
	}
)

var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrMissingCategory   = errors.New("category cannot be empty")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict YYYY-MM-DD date. time.Parse rejects
// impossible calendar dates (2024-02-30, month 13) on its own, so no
// extra range checks are needed.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{Time: t}, nil
}

// String renders the date back in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the YYYY-MM grouping key for this date.
func (d Date) MonthKey() string {
	return d.Format(MonthLayout)
}

// NewRecord validates and normalizes raw input into a Record ready for
// insertion. It is pure: no side effects, the caller persists the result.
//
// Category keeps its casing as entered; whitespace-only notes normalize
// to the empty string. Zero and negative amounts are accepted so refunds
// and corrections can be recorded.
func NewRecord(dateText, category, amountText, notes string) (Record, error) {
	date, err := ParseDate(dateText)
	if err != nil {
		return Record{}, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Record{}, ErrMissingCategory
	}
	amount, err := ParseAmount(amountText)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Date:     date,
		Category: category,
		Amount:   amount,
		Notes:    strings.TrimSpace(notes),
	}, nil
}
