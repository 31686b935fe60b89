package helpers

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// NumericFromDecimal converts a decimal value into a pgtype.Numeric for
// persistence. The coefficient/exponent representation is shared by both
// libraries, so the conversion is exact.
func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// NumericFromDecimalPtr maps nil to SQL NULL.
func NumericFromDecimalPtr(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return NumericFromDecimal(*d)
}

// DecimalFromNumeric converts a pgtype.Numeric row value into a decimal.
// NULL and NaN both map to zero; callers that must distinguish NULL check
// Valid on the raw column first.
func DecimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// DecimalPtrFromNumeric preserves NULL as nil.
func DecimalPtrFromNumeric(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := DecimalFromNumeric(n)
	return &d
}
