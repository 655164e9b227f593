package dto

// CrearProductoRequest captures a new product. Prices are comma-tolerant
// text; StockInicial seeds StockActual (further changes go through
// ApplyStockDelta only).
type CrearProductoRequest struct {
	Nombre       string `json:"nombre"`
	Categoria    string `json:"categoria"`
	PrecioCosto  string `json:"precioCosto"`
	PrecioVenta  string `json:"precioVenta"`
	StockInicial int    `json:"stockInicial"`
}

// ActualizarProductoRequest is a patch over the descriptive fields. Stock
// is deliberately absent: ApplyStockDelta is the only stock mutation path.
type ActualizarProductoRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Categoria   *string `json:"categoria,omitempty"`
	PrecioCosto *string `json:"precioCosto,omitempty"`
	PrecioVenta *string `json:"precioVenta,omitempty"`
}
