package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID        uuid.UUID
	Name      string
	Email     valueobjects.Email
	Password  string // opaca, nunca serializada em respostas
	CPF       valueobjects.CPF
	BirthDate time.Time
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin verifica se o usuário é administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
