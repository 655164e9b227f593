// Package session models the identity handed in by the (external) login
// flow. The core never authenticates: it only needs UserID as the storage
// namespace. Role and Turno are carried for the caller's convenience and
// are never interpreted here.
package session

const (
	TurnoManana = "MAÑANA"
	TurnoTarde  = "TARDE"

	RoleAdmin = "ADMIN"
)

// Sesion is the trusted opaque session object.
type Sesion struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Turno  string `json:"shift"`
}

func (s *Sesion) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// ValidTurno reports whether t names one of the two daily shifts.
func ValidTurno(t string) bool {
	return t == TurnoManana || t == TurnoTarde
}
