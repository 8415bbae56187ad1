package entity

import "time"

// Roles de usuario. Admin y supervisor pueden editar los saldos manuales;
// viewer solo consulta el reporte.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleViewer     = "viewer"
)

// User usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
