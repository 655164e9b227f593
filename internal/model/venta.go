package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItem is one sold line.
type VentaItem struct {
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	Qty            int             `json:"qty"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Venta belongs to exactly one (fechaStr, turno) bucket, newest first.
type Venta struct {
	ID         string          `json:"id"`
	Items      []VentaItem     `json:"items"`
	Total      decimal.Decimal `json:"total"`
	MetodoPago string          `json:"metodoPago"`
	ClienteID  string          `json:"clienteId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
