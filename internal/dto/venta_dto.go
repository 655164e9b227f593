package dto

type VentaItemRequest struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	PrecioUnitario string `json:"precioUnitario"`
}

type RegistrarVentaRequest struct {
	FechaStr   string             `json:"fechaStr"`
	Turno      string             `json:"turno"`
	Items      []VentaItemRequest `json:"items"`
	MetodoPago string             `json:"metodoPago"`
	ClienteID  string             `json:"clienteId,omitempty"`
}
