package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/ports"
)

// nopLogger descarta logs durante os testes
type nopLogger struct{}

func (nopLogger) Info(string, ...any)       {}
func (nopLogger) Error(string, ...any)      {}
func (nopLogger) Debug(string, ...any)      {}
func (nopLogger) Warn(string, ...any)       {}
func (l nopLogger) With(...any) ports.Logger { return l }

// fakeUserRepo implementa repositories.UserRepository em memória
type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.IsActive = true
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok || !user.IsActive {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email.String(), email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByCPF(_ context.Context, cpf string) (*entities.User, error) {
	for _, user := range r.users {
		if user.CPF.String() == cpf {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, user := range r.users {
		if user.IsActive {
			clone := *user
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	user.UpdatedAt = time.Now().UTC()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	user, ok := r.users[id]
	if !ok || !user.IsActive {
		return false, nil
	}
	user.IsActive = false
	return true, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	user, ok := r.users[id]
	return ok && user.IsActive, nil
}

func (r *fakeUserRepo) ExistsAny(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

// fakeInvestmentRepo implementa repositories.InvestmentRepository em memória
type fakeInvestmentRepo struct {
	investments map[uuid.UUID]*entities.Investment
}

func newFakeInvestmentRepo() *fakeInvestmentRepo {
	return &fakeInvestmentRepo{investments: make(map[uuid.UUID]*entities.Investment)}
}

func (r *fakeInvestmentRepo) Create(_ context.Context, investment *entities.Investment) error {
	if investment.ID == uuid.Nil {
		investment.ID = uuid.New()
	}
	investment.IsActive = true
	investment.CreatedAt = time.Now().UTC()
	investment.UpdatedAt = investment.CreatedAt
	clone := *investment
	r.investments[investment.ID] = &clone
	return nil
}

func (r *fakeInvestmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Investment, error) {
	investment, ok := r.investments[id]
	if !ok || !investment.IsActive {
		return nil, nil
	}
	clone := *investment
	return &clone, nil
}

func (r *fakeInvestmentRepo) List(_ context.Context) ([]*entities.Investment, error) {
	var result []*entities.Investment
	for _, investment := range r.investments {
		if investment.IsActive {
			clone := *investment
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeInvestmentRepo) Update(_ context.Context, investment *entities.Investment) error {
	investment.UpdatedAt = time.Now().UTC()
	clone := *investment
	r.investments[investment.ID] = &clone
	return nil
}

func (r *fakeInvestmentRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	investment, ok := r.investments[id]
	if !ok || !investment.IsActive {
		return false, nil
	}
	investment.IsActive = false
	return true, nil
}

func (r *fakeInvestmentRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	investment, ok := r.investments[id]
	return ok && investment.IsActive, nil
}

func (r *fakeInvestmentRepo) ExistsAny(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.investments[id]
	return ok, nil
}

// fakeHoldingRepo implementa repositories.UserInvestmentRepository em memória
type fakeHoldingRepo struct {
	holdings map[uuid.UUID]*entities.UserInvestment
}

func newFakeHoldingRepo() *fakeHoldingRepo {
	return &fakeHoldingRepo{holdings: make(map[uuid.UUID]*entities.UserInvestment)}
}

func (r *fakeHoldingRepo) Create(_ context.Context, holding *entities.UserInvestment) error {
	if holding.ID == uuid.Nil {
		holding.ID = uuid.New()
	}
	if holding.Status == "" {
		holding.Status = entities.HoldingStatusActive
	}
	holding.IsActive = true
	holding.CreatedAt = time.Now().UTC()
	holding.UpdatedAt = holding.CreatedAt
	clone := *holding
	r.holdings[holding.ID] = &clone
	return nil
}

func (r *fakeHoldingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.UserInvestment, error) {
	holding, ok := r.holdings[id]
	if !ok || !holding.IsActive {
		return nil, nil
	}
	clone := *holding
	return &clone, nil
}

func (r *fakeHoldingRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error) {
	var result []*entities.UserInvestment
	for _, holding := range r.holdings {
		if holding.IsActive && holding.UserID == userID {
			clone := *holding
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeHoldingRepo) Update(_ context.Context, holding *entities.UserInvestment) error {
	holding.UpdatedAt = time.Now().UTC()
	clone := *holding
	r.holdings[holding.ID] = &clone
	return nil
}

func (r *fakeHoldingRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	holding, ok := r.holdings[id]
	if !ok || !holding.IsActive {
		return false, nil
	}
	holding.IsActive = false
	return true, nil
}

func (r *fakeHoldingRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	holding, ok := r.holdings[id]
	return ok && holding.IsActive, nil
}

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
