package dto

type CrearClienteRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
	Notas    string `json:"notas"`
}

// ActualizarClienteRequest is a patch: nil fields keep their current value.
type ActualizarClienteRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Email    *string `json:"email,omitempty"`
	Notas    *string `json:"notas,omitempty"`
}
