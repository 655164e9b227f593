package model

import "time"

// Cliente is a free-form customer record. No cross-entity invariants.
type Cliente struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Telefono  string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
