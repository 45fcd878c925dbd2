package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseAmount coerces a loosely typed JSON value into a decimal amount.
// A missing (nil) value is zero. Numbers and numeric strings are accepted;
// anything else, or a value too large for a float64, is an
// apperrors.ErrValidation naming the field.
func ParseAmount(field string, v any) (float64, error) {
	var (
		d   decimal.Decimal
		err error
	)

	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		d = decimal.NewFromFloat(val)
	case float32:
		d = decimal.NewFromFloat32(val)
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case json.Number:
		d, err = decimal.NewFromString(val.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(val))
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", apperrors.ErrValidation, field, v)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: could not convert %s %q to a number", apperrors.ErrValidation, field, fmt.Sprint(v))
	}

	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s %q is out of range", apperrors.ErrValidation, field, fmt.Sprint(v))
	}
	return f, nil
}

// StringOr returns v as a string, or def when v is missing.
func StringOr(v any, def string) string {
	switch val := v.(type) {
	case nil:
		return def
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
