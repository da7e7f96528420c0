package authz

import (
	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
)

// Caller é a identidade resolvida de quem faz a requisição
type Caller struct {
	ID   uuid.UUID
	Role entities.Role
}

// IsAdmin verifica se o chamador é administrador.
// Ausência de identidade (nil) nega.
func IsAdmin(caller *Caller) bool {
	return caller != nil && caller.Role == entities.RoleAdmin
}

// CanAccess decide se o chamador pode operar sobre um recurso cujo dono é
// ownerID: administradores sempre podem, demais usuários apenas sobre os
// próprios recursos. Ausência de identidade nega qualquer operação protegida.
func CanAccess(caller *Caller, ownerID uuid.UUID) bool {
	if caller == nil {
		return false
	}
	if caller.Role == entities.RoleAdmin {
		return true
	}
	return caller.ID == ownerID
}
