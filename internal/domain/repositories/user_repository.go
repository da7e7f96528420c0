package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Leituras padrão consideram apenas registros ativos; os métodos de
// unicidade (FindByEmail, FindByCPF) e ExistsAny enxergam todas as linhas,
// inclusive as removidas logicamente.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsAny(ctx context.Context, id uuid.UUID) (bool, error)
}
