package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is an inventory item. StockActual never goes below zero; the
// only mutation path is ProductoService.ApplyStockDelta.
type Producto struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria,omitempty"`
	PrecioCosto decimal.Decimal `json:"precioCosto"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	StockActual int             `json:"stockActual"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
