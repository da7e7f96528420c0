package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
)

// UserInvestmentRepository define a interface para persistência de aportes.
// As leituras carregam as relações User e Investment para montagem da
// resposta (join de leitura, não estado persistido do aporte).
type UserInvestmentRepository interface {
	Create(ctx context.Context, holding *entities.UserInvestment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error)
	Update(ctx context.Context, holding *entities.UserInvestment) error
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
