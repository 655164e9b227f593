package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condicion de pago de una compra.
const (
	// CondicionCuenta: the purchase goes on the supplier's running account.
	CondicionCuenta = "CUENTA"
	// CondicionPagado: fully paid at registration.
	CondicionPagado = "PAGADO"
)

// CompraItem is one purchased line. Subtotal = Qty * UnitCost, rounded to
// cents at computation time.
type CompraItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Compra is a supplier purchase, bucketed by FechaStr inside the per-user
// compras document (newest first within the bucket).
//
// Invariants: Total = Σ Subtotal; for CUENTA, 0 <= PagadoAhora <= Total and
// SaldoPendiente = Total - PagadoAhora; for PAGADO both are zero.
type Compra struct {
	ID              string          `json:"id"`
	FechaStr        string          `json:"fechaStr"`
	ProveedorID     string          `json:"proveedorId"`
	ProveedorNombre string          `json:"proveedorNombre"`
	Items           []CompraItem    `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Notes           string          `json:"notes"`

	Condicion         string          `json:"condicion"`
	PagadoAhora       decimal.Decimal `json:"pagadoAhora"`
	PagadoAhoraMethod string          `json:"pagadoAhoraMethod"`
	SaldoPendiente    decimal.Decimal `json:"saldoPendiente"`

	CreatedAt time.Time `json:"createdAt"`
}
