package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/errors"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/domain/repositories"
)

// InvestmentService contém a lógica de negócio para o catálogo de
// investimentos
type InvestmentService struct {
	investmentRepo repositories.InvestmentRepository
	logger         ports.Logger
}

// NewInvestmentService cria um novo InvestmentService
func NewInvestmentService(investmentRepo repositories.InvestmentRepository, logger ports.Logger) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

// InvestmentInput representa os dados para criar ou atualizar um produto
type InvestmentInput struct {
	Name                 string
	Type                 string
	BaseValue            decimal.Decimal
	ExpectedYieldPercent decimal.Decimal
	RiskLevel            string
	Description          string
	IsActive             *bool
}

// ListInvestments lista produtos ativos ordenados por nome
func (s *InvestmentService) ListInvestments(ctx context.Context) ([]*entities.Investment, error) {
	return s.investmentRepo.List(ctx)
}

// GetInvestment busca um produto ativo por ID
func (s *InvestmentService) GetInvestment(ctx context.Context, id uuid.UUID) (*entities.Investment, error) {
	investment, err := s.investmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, errors.ErrInvestmentNotFound
	}
	return investment, nil
}

// CreateInvestment cria um novo produto no catálogo
func (s *InvestmentService) CreateInvestment(ctx context.Context, input InvestmentInput) (*entities.Investment, error) {
	s.logger.Info("creating investment", "name", input.Name)

	investment := &entities.Investment{
		Name:                 input.Name,
		Type:                 input.Type,
		BaseValue:            input.BaseValue,
		ExpectedYieldPercent: input.ExpectedYieldPercent,
		RiskLevel:            input.RiskLevel,
		Description:          input.Description,
	}

	if err := s.investmentRepo.Create(ctx, investment); err != nil {
		return nil, err
	}

	s.logger.Info("investment created successfully", "investment_id", investment.ID)
	return investment, nil
}

// UpdateInvestment atualiza os campos mutáveis de um produto.
// ID e data de criação nunca mudam.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, id uuid.UUID, input InvestmentInput) (*entities.Investment, error) {
	s.logger.Info("updating investment", "investment_id", id)

	investment, err := s.investmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, errors.ErrInvestmentNotFound
	}

	investment.Name = input.Name
	investment.Type = input.Type
	investment.BaseValue = input.BaseValue
	investment.ExpectedYieldPercent = input.ExpectedYieldPercent
	investment.RiskLevel = input.RiskLevel
	investment.Description = input.Description
	if input.IsActive != nil {
		investment.IsActive = *input.IsActive
	}

	if err := s.investmentRepo.Update(ctx, investment); err != nil {
		return nil, err
	}

	s.logger.Info("investment updated successfully", "investment_id", investment.ID)
	return investment, nil
}

// DeleteInvestment remove logicamente um produto do catálogo
func (s *InvestmentService) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("deleting investment", "investment_id", id)

	deleted, err := s.investmentRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Warn("failed to delete investment", "investment_id", id)
		return errors.ErrInvestmentNotFound
	}

	s.logger.Info("investment deleted successfully", "investment_id", id)
	return nil
}
