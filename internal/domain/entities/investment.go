package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment representa um produto de investimento do catálogo
type Investment struct {
	ID                   uuid.UUID
	Name                 string
	Type                 string // "Renda Fixa", "Fundo", etc.
	BaseValue            decimal.Decimal
	ExpectedYieldPercent decimal.Decimal
	RiskLevel            string // "Baixo", "Médio", "Alto"
	Description          string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
