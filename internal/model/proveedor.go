package model

import "time"

// Proveedor is a supplier. Nombre is unique per user, case-insensitively.
// Activo=false hides the supplier from default listings without breaking
// references from compras/pagos.
type Proveedor struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Direccion string    `json:"direccion"`
	Notas     string    `json:"notas"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
