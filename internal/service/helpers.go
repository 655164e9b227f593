package service

import (
	"strings"

	"almacenpos/internal/apperror"

	"github.com/shopspring/decimal"
)

// requireUserID is the session-presence gate: every operation takes the
// identity explicitly, and an empty one means the caller has no session.
func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperror.Precondition("Sin sesión")
	}
	return nil
}

// parseMonto parses user-entered money, accepting comma or dot as decimal
// separator. Empty input parses as zero.
func parseMonto(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if trimmed == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(trimmed)
}

// round2 rounds to cents. Applied at every computation boundary.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func mulQty(unit decimal.Decimal, qty int) decimal.Decimal {
	return round2(unit.Mul(decimal.NewFromInt(int64(qty))))
}
