package recipe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ingredient is one line of a recipe.
type Ingredient struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`        // nil when the amount text is malformed
	Unit   *string  `json:"unit"`          // nil when the amount text has no unit token
	Raw    string   `json:"raw,omitempty"` // Amount text as it appeared in the dataset
}

// ErrMalformedAmount is returned by ParseAmount when the amount text does not
// split into a numeric token and a unit token.
var ErrMalformedAmount = errors.New("malformed ingredient amount")

// ParseIngredient turns a raw amount string and an ingredient name into an
// Ingredient. It never fails: malformed amounts leave Amount and Unit nil and
// keep the name.
func ParseIngredient(rawAmount, name string) Ingredient {
	amount, unit, _ := ParseAmount(rawAmount)
	return Ingredient{
		Name:   name,
		Amount: amount,
		Unit:   unit,
		Raw:    strings.TrimSpace(rawAmount),
	}
}

// ParseAmount splits amount text such as "1.5 oz" into a number and a unit.
//
// With fewer than two whitespace-separated tokens both results are nil. With
// two or more tokens the second is the unit; the first is parsed as a decimal
// or a simple fraction ("3/4") and left nil if it is neither. Any nil result is
// reported with an error wrapping ErrMalformedAmount.
func ParseAmount(raw string) (*float64, *string, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return nil, nil, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}

	unit := fields[1]
	value, ok := parseNumber(fields[0])
	if !ok {
		return nil, &unit, fmt.Errorf("%w: %q is not a number", ErrMalformedAmount, fields[0])
	}
	return &value, &unit, nil
}

// parseNumber accepts decimals and a/b fractions.
func parseNumber(s string) (float64, bool) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// Malformed reports whether the amount text could not be fully parsed.
func (i Ingredient) Malformed() bool {
	return i.Amount == nil || i.Unit == nil
}

// Display returns "name amount", or just the name when no amount was given.
func (i Ingredient) Display() string {
	if i.Raw == "" {
		return i.Name
	}
	return i.Name + " " + i.Raw
}
