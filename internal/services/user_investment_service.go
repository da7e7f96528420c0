package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/errors"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/domain/repositories"
)

// UserInvestmentService contém a lógica de negócio para aportes
type UserInvestmentService struct {
	holdingRepo    repositories.UserInvestmentRepository
	userRepo       repositories.UserRepository
	investmentRepo repositories.InvestmentRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewUserInvestmentService cria um novo UserInvestmentService
func NewUserInvestmentService(
	holdingRepo repositories.UserInvestmentRepository,
	userRepo repositories.UserRepository,
	investmentRepo repositories.InvestmentRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserInvestmentService {
	return &UserInvestmentService{
		holdingRepo:    holdingRepo,
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
		uow:            uow,
		logger:         logger,
	}
}

// CreateUserInvestmentInput representa os dados para criar um aporte
type CreateUserInvestmentInput struct {
	InvestmentID   uuid.UUID
	AmountInvested decimal.Decimal
	Units          decimal.Decimal
	PurchaseDate   time.Time
	CurrentValue   decimal.Decimal
	Status         string
}

// UpdateUserInvestmentInput representa os dados para atualizar um aporte.
// ID, usuário, produto e data de criação são imutáveis.
type UpdateUserInvestmentInput struct {
	AmountInvested decimal.Decimal
	Units          decimal.Decimal
	PurchaseDate   time.Time
	CurrentValue   decimal.Decimal
	Status         string
	IsActive       *bool
}

// ListByUser lista os aportes ativos de um usuário, mais recentes primeiro
func (s *UserInvestmentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error) {
	s.logger.Info("fetching investments for user", "user_id", userID)

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.ErrUserNotFound
	}

	return s.holdingRepo.ListByUser(ctx, userID)
}

// GetUserInvestment busca um aporte ativo por ID
func (s *UserInvestmentService) GetUserInvestment(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error) {
	holding, err := s.holdingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, errors.ErrUserInvestmentNotFound
	}
	return holding, nil
}

// CreateUserInvestment cria um aporte para o usuário após verificar a
// existência do usuário e do produto. As checagens e o insert correm na
// mesma transação; a foreign key do banco cobre a janela entre checagem e
// escrita.
func (s *UserInvestmentService) CreateUserInvestment(ctx context.Context, userID uuid.UUID, input CreateUserInvestmentInput) (*entities.UserInvestment, error) {
	s.logger.Info("creating user investment", "user_id", userID, "investment_id", input.InvestmentID)

	holding := &entities.UserInvestment{
		UserID:         userID,
		InvestmentID:   input.InvestmentID,
		AmountInvested: input.AmountInvested,
		Units:          input.Units,
		PurchaseDate:   input.PurchaseDate,
		CurrentValue:   input.CurrentValue,
		Status:         input.Status,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		// Validação de FK enxerga todas as linhas, ativas ou não
		userExists, err := s.userRepo.ExistsAny(txCtx, userID)
		if err != nil {
			return err
		}
		if !userExists {
			return errors.ErrUserNotFound
		}

		investmentExists, err := s.investmentRepo.ExistsAny(txCtx, input.InvestmentID)
		if err != nil {
			return err
		}
		if !investmentExists {
			return errors.ErrInvestmentNotFound
		}

		return s.holdingRepo.Create(txCtx, holding)
	})
	if err != nil {
		return nil, err
	}

	// Recarregar com as relações para montagem da resposta
	created, err := s.holdingRepo.FindByID(ctx, holding.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return holding, nil
	}

	s.logger.Info("user investment created successfully", "user_investment_id", created.ID)
	return created, nil
}

// UpdateUserInvestment atualiza os campos mutáveis de um aporte
func (s *UserInvestmentService) UpdateUserInvestment(ctx context.Context, id uuid.UUID, input UpdateUserInvestmentInput) (*entities.UserInvestment, error) {
	s.logger.Info("updating user investment", "user_investment_id", id)

	holding, err := s.holdingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, errors.ErrUserInvestmentNotFound
	}

	holding.AmountInvested = input.AmountInvested
	holding.Units = input.Units
	holding.PurchaseDate = input.PurchaseDate
	holding.CurrentValue = input.CurrentValue
	holding.Status = input.Status
	if input.IsActive != nil {
		holding.IsActive = *input.IsActive
	}

	if err := s.holdingRepo.Update(ctx, holding); err != nil {
		return nil, err
	}

	s.logger.Info("user investment updated successfully", "user_investment_id", holding.ID)
	return holding, nil
}

// DeleteUserInvestment remove logicamente um aporte
func (s *UserInvestmentService) DeleteUserInvestment(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("deleting user investment", "user_investment_id", id)

	deleted, err := s.holdingRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Warn("failed to delete user investment", "user_investment_id", id)
		return errors.ErrUserInvestmentNotFound
	}

	s.logger.Info("user investment deleted successfully", "user_investment_id", id)
	return nil
}
