package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/authz"
)

// IdentityGateway resolve um identificador de chamador para sua identidade.
// Retorna (nil, nil) quando o id não corresponde a um usuário ativo.
// Abstrai a origem da identidade para que o mecanismo possa ser trocado
// (ex: token) sem tocar na lógica de negócio.
type IdentityGateway interface {
	Resolve(ctx context.Context, id uuid.UUID) (*authz.Caller, error)
}
