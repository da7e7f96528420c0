package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status de um aporte
const (
	HoldingStatusActive   = "Ativo"
	HoldingStatusRedeemed = "Resgatado"
)

// UserInvestment representa um aporte: um lote de compra ligando um usuário
// a um produto de investimento
type UserInvestment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	InvestmentID   uuid.UUID
	AmountInvested decimal.Decimal
	Units          decimal.Decimal
	PurchaseDate   time.Time
	CurrentValue   decimal.Decimal
	Status         string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relações carregadas nas leituras para montagem da resposta
	User       *User
	Investment *Investment
}
