package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/repositories"
	"github.com/investapp/backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	model := r.toModel(user)

	db := r.getDB(ctx)
	return db.Create(model).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var model UserModel

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

// FindByEmail busca por email (case-insensitive) em TODAS as linhas,
// inclusive inativas: um usuário removido logicamente não libera seu email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// FindByCPF busca por CPF em todas as linhas, inclusive inativas
func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where("cpf = ?", cpf).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := r.getDB(ctx)
	err := db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	user.UpdatedAt = time.Now().UTC()
	model := r.toModel(user)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	db := r.getDB(ctx)
	// Soft delete: desativar ao invés de remover a linha
	result := db.Model(&UserModel{}).
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

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&UserModel{}).
		Where("id = ? AND is_active = ?", id.String(), true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsAny verifica existência ignorando o flag de ativo: a linha
// permanece no banco após o soft delete
func (r *UserRepository) ExistsAny(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&UserModel{}).
		Where("id = ?", id.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email.String(),
		Password:  user.Password,
		CPF:       user.CPF.String(),
		BirthDate: user.BirthDate.Unix(),
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Unix(),
		UpdatedAt: user.UpdatedAt.Unix(),
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:        id,
		Name:      model.Name,
		Email:     email,
		Password:  model.Password,
		CPF:       cpf,
		BirthDate: time.Unix(model.BirthDate, 0).UTC(),
		Role:      entities.Role(model.Role),
		IsActive:  model.IsActive,
		CreatedAt: time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt: time.Unix(model.UpdatedAt, 0).UTC(),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
