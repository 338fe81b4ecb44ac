package entity

import "time"

// User representa un usuario del sistema. Los usuarios con rol client
// pertenecen a una Company; admin y compliance_officer no tienen empresa.
type User struct {
	ID           string
	CompanyID    string // vacío salvo rol client
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor construye la identidad de llamador correspondiente al usuario.
func (u *User) Actor() Actor {
	return Actor{UserID: u.ID, CompanyID: u.CompanyID, Role: u.Role}
}
