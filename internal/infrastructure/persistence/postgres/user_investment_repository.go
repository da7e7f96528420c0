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

// UserInvestmentRepository implementa repositories.UserInvestmentRepository
type UserInvestmentRepository struct {
	db *gorm.DB
}

// NewUserInvestmentRepository cria um novo UserInvestmentRepository
func NewUserInvestmentRepository(db *gorm.DB) repositories.UserInvestmentRepository {
	return &UserInvestmentRepository{db: db}
}

func (r *UserInvestmentRepository) Create(ctx context.Context, holding *entities.UserInvestment) error {
	if holding.ID == uuid.Nil {
		holding.ID = uuid.New()
	}
	if holding.Status == "" {
		holding.Status = entities.HoldingStatusActive
	}
	now := time.Now().UTC()
	holding.CreatedAt = now
	holding.UpdatedAt = now
	holding.IsActive = true

	model := r.toModel(holding)

	db := r.getDB(ctx)
	return db.Create(model).Error
}

func (r *UserInvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error) {
	var model UserInvestmentModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros inativos; relações carregadas para a resposta
	err := db.Preload("User").Preload("Investment").
		Where("id = ? AND is_active = ?", id.String(), true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserInvestmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error) {
	var models []*UserInvestmentModel

	db := r.getDB(ctx)
	err := db.Preload("User").Preload("Investment").
		Where("user_id = ? AND is_active = ?", userID.String(), true).
		Order("purchase_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserInvestmentRepository) Update(ctx context.Context, holding *entities.UserInvestment) error {
	holding.UpdatedAt = time.Now().UTC()
	model := r.toModel(holding)

	db := r.getDB(ctx)
	return db.Omit("User", "Investment").Save(model).Error
}

func (r *UserInvestmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	db := r.getDB(ctx)
	result := db.Model(&UserInvestmentModel{}).
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

func (r *UserInvestmentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&UserInvestmentModel{}).
		Where("id = ? AND is_active = ?", id.String(), true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserInvestmentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *UserInvestmentRepository) toModel(holding *entities.UserInvestment) *UserInvestmentModel {
	return &UserInvestmentModel{
		ID:             holding.ID.String(),
		UserID:         holding.UserID.String(),
		InvestmentID:   holding.InvestmentID.String(),
		AmountInvested: holding.AmountInvested,
		Units:          holding.Units,
		PurchaseDate:   holding.PurchaseDate.Unix(),
		CurrentValue:   holding.CurrentValue,
		Status:         holding.Status,
		IsActive:       holding.IsActive,
		CreatedAt:      holding.CreatedAt.Unix(),
		UpdatedAt:      holding.UpdatedAt.Unix(),
	}
}

func (r *UserInvestmentRepository) toEntity(model *UserInvestmentModel) (*entities.UserInvestment, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, err
	}
	investmentID, err := uuid.Parse(model.InvestmentID)
	if err != nil {
		return nil, err
	}

	holding := &entities.UserInvestment{
		ID:             id,
		UserID:         userID,
		InvestmentID:   investmentID,
		AmountInvested: model.AmountInvested,
		Units:          model.Units,
		PurchaseDate:   time.Unix(model.PurchaseDate, 0).UTC(),
		CurrentValue:   model.CurrentValue,
		Status:         model.Status,
		IsActive:       model.IsActive,
		CreatedAt:      time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0).UTC(),
	}

	if model.User != nil {
		user, err := (&UserRepository{}).toEntity(model.User)
		if err != nil {
			return nil, err
		}
		holding.User = user
	}
	if model.Investment != nil {
		investment, err := (&InvestmentRepository{}).toEntity(model.Investment)
		if err != nil {
			return nil, err
		}
		holding.Investment = investment
	}

	return holding, nil
}

func (r *UserInvestmentRepository) toEntities(models []*UserInvestmentModel) ([]*entities.UserInvestment, error) {
	holdings := make([]*entities.UserInvestment, 0, len(models))

	for _, model := range models {
		holding, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}
