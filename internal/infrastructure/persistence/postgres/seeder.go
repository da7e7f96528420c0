package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/ports"
)

// Seed popula o banco com dados iniciais: um administrador, um usuário de
// teste e um catálogo de investimentos de exemplo. Idempotente: não faz
// nada se já houver usuários ou investimentos.
func Seed(db *gorm.DB, log ports.Logger) error {
	var userCount, investmentCount int64

	if err := db.Model(&UserModel{}).Count(&userCount).Error; err != nil {
		return err
	}
	if err := db.Model(&InvestmentModel{}).Count(&investmentCount).Error; err != nil {
		return err
	}

	if userCount > 0 || investmentCount > 0 {
		log.Debug("database already seeded, skipping")
		return nil
	}

	now := time.Now().UTC().Unix()

	users := []*UserModel{
		{
			ID:        uuid.NewString(),
			Name:      "Administrador",
			Email:     "admin@investapp.com",
			Password:  "admin123",
			CPF:       "12345678900",
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
			Role:      string(entities.RoleAdmin),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "João Silva",
			Email:     "joao@teste.com",
			Password:  "usuario123",
			CPF:       "98765432100",
			BirthDate: time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC).Unix(),
			Role:      string(entities.RoleUser),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	investments := []*InvestmentModel{
		{
			ID:                   uuid.NewString(),
			Name:                 "Tesouro Direto - Selic 2029",
			Type:                 "Renda Fixa",
			BaseValue:            decimal.NewFromFloat(100.00),
			ExpectedYieldPercent: decimal.NewFromFloat(12.50),
			RiskLevel:            "Baixo",
			Description:          "Título do Tesouro Nacional indexado à taxa Selic",
			IsActive:             true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Fundo Multimercado XP",
			Type:                 "Fundo",
			BaseValue:            decimal.NewFromFloat(50.00),
			ExpectedYieldPercent: decimal.NewFromFloat(15.80),
			RiskLevel:            "Médio",
			Description:          "Fundo de investimento multimercado com estratégia diversificada",
			IsActive:             true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Ações PETR4",
			Type:                 "Renda Variável",
			BaseValue:            decimal.NewFromFloat(35.20),
			ExpectedYieldPercent: decimal.NewFromFloat(22.00),
			RiskLevel:            "Alto",
			Description:          "Ações preferenciais da Petrobras",
			IsActive:             true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&investments).Error; err != nil {
			return err
		}

		log.Info("database seeded",
			"users", len(users),
			"investments", len(investments),
		)
		return nil
	})
}
