package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/authz"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/domain/repositories"
)

// IdentityService implementa ports.IdentityGateway sobre o repositório de
// usuários: o id informado no header só vale como identidade se resolver
// para um usuário ativo
type IdentityService struct {
	userRepo repositories.UserRepository
}

// NewIdentityService cria um novo IdentityService
func NewIdentityService(userRepo repositories.UserRepository) ports.IdentityGateway {
	return &IdentityService{userRepo: userRepo}
}

func (s *IdentityService) Resolve(ctx context.Context, id uuid.UUID) (*authz.Caller, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &authz.Caller{ID: user.ID, Role: user.Role}, nil
}
