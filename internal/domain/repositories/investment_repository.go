package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
)

// InvestmentRepository define a interface para persistência do catálogo
// de investimentos
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.Investment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Investment, error)
	List(ctx context.Context) ([]*entities.Investment, error)
	Update(ctx context.Context, investment *entities.Investment) error
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsAny(ctx context.Context, id uuid.UUID) (bool, error)
}
