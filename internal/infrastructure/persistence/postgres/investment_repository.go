package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/repositories"
)

// InvestmentRepository implementa repositories.InvestmentRepository
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository cria um novo InvestmentRepository
func NewInvestmentRepository(db *gorm.DB) repositories.InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	if investment.ID == uuid.Nil {
		investment.ID = uuid.New()
	}
	now := time.Now().UTC()
	investment.CreatedAt = now
	investment.UpdatedAt = now
	investment.IsActive = true

	model := r.toModel(investment)

	db := r.getDB(ctx)
	return db.Create(model).Error
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Investment, error) {
	var model InvestmentModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros inativos
	if err := db.Where("id = ? AND is_active = ?", id.String(), true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *InvestmentRepository) List(ctx context.Context) ([]*entities.Investment, error) {
	var models []*InvestmentModel

	db := r.getDB(ctx)
	err := db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *InvestmentRepository) Update(ctx context.Context, investment *entities.Investment) error {
	investment.UpdatedAt = time.Now().UTC()
	model := r.toModel(investment)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *InvestmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	db := r.getDB(ctx)
	result := db.Model(&InvestmentModel{}).
		Where("id = ? AND is_active = ?", id.String(), true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC().Unix(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *InvestmentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&InvestmentModel{}).
		Where("id = ? AND is_active = ?", id.String(), true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsAny verifica existência ignorando o flag de ativo
func (r *InvestmentRepository) ExistsAny(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&InvestmentModel{}).
		Where("id = ?", id.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InvestmentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *InvestmentRepository) toModel(investment *entities.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:                   investment.ID.String(),
		Name:                 investment.Name,
		Type:                 investment.Type,
		BaseValue:            investment.BaseValue,
		ExpectedYieldPercent: investment.ExpectedYieldPercent,
		RiskLevel:            investment.RiskLevel,
		Description:          investment.Description,
		IsActive:             investment.IsActive,
		CreatedAt:            investment.CreatedAt.Unix(),
		UpdatedAt:            investment.UpdatedAt.Unix(),
	}
}

func (r *InvestmentRepository) toEntity(model *InvestmentModel) (*entities.Investment, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	return &entities.Investment{
		ID:                   id,
		Name:                 model.Name,
		Type:                 model.Type,
		BaseValue:            model.BaseValue,
		ExpectedYieldPercent: model.ExpectedYieldPercent,
		RiskLevel:            model.RiskLevel,
		Description:          model.Description,
		IsActive:             model.IsActive,
		CreatedAt:            time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:            time.Unix(model.UpdatedAt, 0).UTC(),
	}, nil
}

func (r *InvestmentRepository) toEntities(models []*InvestmentModel) ([]*entities.Investment, error) {
	investments := make([]*entities.Investment, 0, len(models))

	for _, model := range models {
		investment, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	return investments, nil
}
