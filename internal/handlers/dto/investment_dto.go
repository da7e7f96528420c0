package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/services"
)

// InvestmentRequest representa a requisição para criar ou atualizar um
// produto de investimento
type InvestmentRequest struct {
	Name                 string  `json:"name" binding:"required,max=100"`
	Type                 string  `json:"type" binding:"required,max=50"`
	BaseValue            float64 `json:"baseValue" binding:"required,gt=0"`
	ExpectedYieldPercent float64 `json:"expectedYieldPercent" binding:"gte=0,lte=100"`
	RiskLevel            string  `json:"riskLevel" binding:"required,max=20"`
	Description          string  `json:"description" binding:"omitempty,max=500"`
	IsActive             *bool   `json:"isActive"`
}

// ToInput converte a requisição para o input do serviço
func (r InvestmentRequest) ToInput() services.InvestmentInput {
	return services.InvestmentInput{
		Name:                 r.Name,
		Type:                 r.Type,
		BaseValue:            decimal.NewFromFloat(r.BaseValue),
		ExpectedYieldPercent: decimal.NewFromFloat(r.ExpectedYieldPercent),
		RiskLevel:            r.RiskLevel,
		Description:          r.Description,
		IsActive:             r.IsActive,
	}
}

// InvestmentResponse representa a projeção de um produto nas respostas
type InvestmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Type                 string    `json:"type"`
	BaseValue            float64   `json:"baseValue"`
	ExpectedYieldPercent float64   `json:"expectedYieldPercent"`
	RiskLevel            string    `json:"riskLevel"`
	Description          string    `json:"description"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ToInvestmentResponse converte uma entidade Investment para a projeção
func ToInvestmentResponse(investment *entities.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:                   investment.ID,
		Name:                 investment.Name,
		Type:                 investment.Type,
		BaseValue:            investment.BaseValue.InexactFloat64(),
		ExpectedYieldPercent: investment.ExpectedYieldPercent.InexactFloat64(),
		RiskLevel:            investment.RiskLevel,
		Description:          investment.Description,
		IsActive:             investment.IsActive,
		CreatedAt:            investment.CreatedAt,
		UpdatedAt:            investment.UpdatedAt,
	}
}

// ToInvestmentResponses converte uma lista de entidades para projeções
func ToInvestmentResponses(investments []*entities.Investment) []InvestmentResponse {
	responses := make([]InvestmentResponse, len(investments))
	for i, investment := range investments {
		responses[i] = ToInvestmentResponse(investment)
	}
	return responses
}
