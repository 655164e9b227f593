package dto

import "github.com/shopspring/decimal"

type AddPagoRequest struct {
	ProveedorID     string `json:"proveedorId"`
	ProveedorNombre string `json:"proveedorNombre"`
	// Amount is comma-tolerant text; must parse to a positive number.
	Amount string `json:"amount"`
	// Method defaults to TRANSFERENCIA when empty.
	Method string `json:"method"`
	Notes  string `json:"notes"`
	// RefCompraID/RefFechaStr are set by CompraService for automatic
	// payments; manual callers leave them empty.
	RefCompraID string `json:"refCompraId,omitempty"`
	RefFechaStr string `json:"refFechaStr,omitempty"`
	// Origin defaults to MANUAL unless exactly AUTO_COMPRA.
	Origin string `json:"origin,omitempty"`
}

// SaldoProveedorResponse is the derived cuenta corriente position: what the
// CUENTA purchases still owe minus everything already paid.
type SaldoProveedorResponse struct {
	DeudaCompras decimal.Decimal `json:"deudaCompras"`
	PagosTotal   decimal.Decimal `json:"pagosTotal"`
	Saldo        decimal.Decimal `json:"saldo"`
}
