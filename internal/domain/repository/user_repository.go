package repository

import "github.com/jhoicas/cumplimiento-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// List devuelve usuarios ordenados por fecha de creación descendente.
	List(limit, offset int) ([]*entity.User, error)
	// ListActiveByRoles devuelve usuarios activos con alguno de los roles
	// indicados (destinatarios de recordatorios de vencimiento).
	ListActiveByRoles(roles []string) ([]*entity.User, error)
}
