package dto

type CrearProveedorRequest struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Notas     string `json:"notas"`
	// Activo defaults to true when nil.
	Activo *bool `json:"activo,omitempty"`
}

// ActualizarProveedorRequest is a patch: nil fields keep their current
// value.
type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	Notas     *string `json:"notas,omitempty"`
	Activo    *bool   `json:"activo,omitempty"`
}
