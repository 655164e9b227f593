package dto

// CompraItemRequest is one purchase line as captured by the form. UnitCost
// arrives as text and accepts comma or dot as decimal separator.
type CompraItemRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitCost  string `json:"unitCost"`
}

type RegistrarCompraRequest struct {
	FechaStr        string              `json:"fechaStr"`
	ProveedorID     string              `json:"proveedorId"`
	ProveedorNombre string              `json:"proveedorNombre"`
	Items           []CompraItemRequest `json:"items"`
	// Condicion is coerced: anything other than exactly "CUENTA" means
	// PAGADO.
	Condicion string `json:"condicion"`
	// PagadoAhora only applies to CUENTA purchases; comma-tolerant text.
	PagadoAhora       string `json:"pagadoAhora"`
	PagadoAhoraMethod string `json:"pagadoAhoraMethod"`
	Notes             string `json:"notes"`
}

type EliminarCompraRequest struct {
	FechaStr string `json:"fechaStr"`
	CompraID string `json:"compraId"`
}
