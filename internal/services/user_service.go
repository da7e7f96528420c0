package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/errors"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	CPF       string
	BirthDate time.Time
	Role      string
}

// UpdateUserInput representa os dados para atualizar um usuário.
// Senha e CPF são imutáveis por esta operação.
type UpdateUserInput struct {
	Name      string
	Email     string
	BirthDate time.Time
	Role      string
	IsActive  *bool
}

// CreateUser cria um novo usuário. Email e CPF devem ser únicos entre
// TODAS as linhas, ativas ou não: remoção lógica não libera o documento.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email)

	user, err := newUserFromInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, user.Email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	existing, err = s.userRepo.FindByCPF(ctx, user.CPF.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCPFAlreadyExists
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário ativo por ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários ativos ordenados por nome
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser atualiza os campos mutáveis de um usuário. Troca de email
// passa pela mesma checagem de unicidade da criação.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entities.User, error) {
	s.logger.Info("updating user", "user_id", id)

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	email, err := valueEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if email.String() != user.Email.String() {
		existing, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.ErrEmailAlreadyExists
		}
	}

	user.Name = input.Name
	user.Email = email
	user.BirthDate = input.BirthDate
	if input.Role != "" {
		user.Role = entities.Role(input.Role)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated successfully", "user_id", user.ID)
	return user, nil
}

// DeleteUser remove logicamente um usuário
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("deleting user", "user_id", id)

	deleted, err := s.userRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Warn("failed to delete user", "user_id", id)
		return errors.ErrUserNotFound
	}

	s.logger.Info("user deleted successfully", "user_id", id)
	return nil
}

// ChangePassword troca a senha após conferir a senha atual
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	s.logger.Info("changing password", "user_id", id)

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if user.Password != currentPassword {
		s.logger.Warn("invalid current password", "user_id", id)
		return errors.ErrInvalidCredentials
	}

	user.Password = newPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password changed successfully", "user_id", id)
	return nil
}

// ValidateCredentials valida email e senha, retornando o usuário quando
// conferem
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (*entities.User, error) {
	s.logger.Info("validating credentials", "email", email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || user.Password != password {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}
