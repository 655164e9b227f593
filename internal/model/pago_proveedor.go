package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago origins and default method.
const (
	// OrigenManual: registered by hand from the cuenta corriente screen.
	OrigenManual = "MANUAL"
	// OrigenAutoCompra: emitted automatically when a CUENTA purchase is
	// registered with a partial upfront payment. Lifecycle-bound to the
	// referenced compra: deleted when the compra is deleted.
	OrigenAutoCompra = "AUTO_COMPRA"

	MetodoTransferencia = "TRANSFERENCIA"
)

// PagoProveedor is one payment to a supplier, stored newest-first in the
// per-user flat pagos document.
type PagoProveedor struct {
	ID              string          `json:"id"`
	ProveedorID     string          `json:"proveedorId"`
	ProveedorNombre string          `json:"proveedorNombre"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method"`
	Notes           string          `json:"notes"`
	// RefCompraID/RefFechaStr point at the originating compra for
	// AUTO_COMPRA payments; empty for manual ones.
	RefCompraID string    `json:"refCompraId,omitempty"`
	RefFechaStr string    `json:"refFechaStr,omitempty"`
	Origin      string    `json:"origin"`
	CreatedAt   time.Time `json:"createdAt"`
}
