package model

import "github.com/shopspring/decimal"

// Caja estados.
const (
	CajaAbierta = "ABIERTA"
	CajaCerrada = "CERRADA"
)

// Caja is one register session, keyed by (fechaStr, turno) inside the
// per-user cajas document. Ventas may only post while Estado=ABIERTA.
// VentasTotal accumulates signed deltas via CajaService.AddToVentasTotal.
type Caja struct {
	Estado      string          `json:"estado"`
	VentasTotal decimal.Decimal `json:"ventasTotal"`
}

func (c *Caja) Abierta() bool { return c != nil && c.Estado == CajaAbierta }
