package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/services"
)

// CreateUserInvestmentRequest representa a requisição para criar um aporte
type CreateUserInvestmentRequest struct {
	InvestmentID   uuid.UUID `json:"investmentId" binding:"required"`
	AmountInvested float64   `json:"amountInvested" binding:"required,gt=0"`
	Units          float64   `json:"units" binding:"required,gt=0"`
	PurchaseDate   time.Time `json:"purchaseDate" binding:"required"`
	CurrentValue   float64   `json:"currentValue" binding:"gte=0"`
	Status         string    `json:"status" binding:"omitempty,max=20"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateUserInvestmentRequest) ToInput() services.CreateUserInvestmentInput {
	return services.CreateUserInvestmentInput{
		InvestmentID:   r.InvestmentID,
		AmountInvested: decimal.NewFromFloat(r.AmountInvested),
		Units:          decimal.NewFromFloat(r.Units),
		PurchaseDate:   r.PurchaseDate,
		CurrentValue:   decimal.NewFromFloat(r.CurrentValue),
		Status:         r.Status,
	}
}

// UpdateUserInvestmentRequest representa a requisição para atualizar um
// aporte. Usuário e produto de origem são imutáveis.
type UpdateUserInvestmentRequest struct {
	AmountInvested float64   `json:"amountInvested" binding:"required,gt=0"`
	Units          float64   `json:"units" binding:"required,gt=0"`
	PurchaseDate   time.Time `json:"purchaseDate" binding:"required"`
	CurrentValue   float64   `json:"currentValue" binding:"gte=0"`
	Status         string    `json:"status" binding:"required,max=20"`
	IsActive       *bool     `json:"isActive"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdateUserInvestmentRequest) ToInput() services.UpdateUserInvestmentInput {
	return services.UpdateUserInvestmentInput{
		AmountInvested: decimal.NewFromFloat(r.AmountInvested),
		Units:          decimal.NewFromFloat(r.Units),
		PurchaseDate:   r.PurchaseDate,
		CurrentValue:   decimal.NewFromFloat(r.CurrentValue),
		Status:         r.Status,
		IsActive:       r.IsActive,
	}
}

// UserInvestmentResponse representa a projeção de um aporte, com as
// projeções do usuário e do produto anexadas quando carregadas
type UserInvestmentResponse struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"userId"`
	InvestmentID   uuid.UUID           `json:"investmentId"`
	AmountInvested float64             `json:"amountInvested"`
	Units          float64             `json:"units"`
	PurchaseDate   time.Time           `json:"purchaseDate"`
	CurrentValue   float64             `json:"currentValue"`
	Status         string              `json:"status"`
	IsActive       bool                `json:"isActive"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	User           *UserResponse       `json:"user,omitempty"`
	Investment     *InvestmentResponse `json:"investment,omitempty"`
}

// ToUserInvestmentResponse converte uma entidade UserInvestment para a
// projeção
func ToUserInvestmentResponse(holding *entities.UserInvestment) UserInvestmentResponse {
	response := UserInvestmentResponse{
		ID:             holding.ID,
		UserID:         holding.UserID,
		InvestmentID:   holding.InvestmentID,
		AmountInvested: holding.AmountInvested.InexactFloat64(),
		Units:          holding.Units.InexactFloat64(),
		PurchaseDate:   holding.PurchaseDate,
		CurrentValue:   holding.CurrentValue.InexactFloat64(),
		Status:         holding.Status,
		IsActive:       holding.IsActive,
		CreatedAt:      holding.CreatedAt,
		UpdatedAt:      holding.UpdatedAt,
	}

	if holding.User != nil {
		user := ToUserResponse(holding.User)
		response.User = &user
	}
	if holding.Investment != nil {
		investment := ToInvestmentResponse(holding.Investment)
		response.Investment = &investment
	}

	return response
}

// ToUserInvestmentResponses converte uma lista de aportes para projeções
func ToUserInvestmentResponses(holdings []*entities.UserInvestment) []UserInvestmentResponse {
	responses := make([]UserInvestmentResponse, len(holdings))
	for i, holding := range holdings {
		responses[i] = ToUserInvestmentResponse(holding)
	}
	return responses
}
