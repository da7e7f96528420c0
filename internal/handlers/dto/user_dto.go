package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Name      string    `json:"nome" binding:"required,max=100"`
	Email     string    `json:"email" binding:"required,email,max=100"`
	Password  string    `json:"senha" binding:"required,min=6,max=255"`
	CPF       string    `json:"cpf" binding:"required,len=11,numeric"`
	BirthDate time.Time `json:"dataNascimento" binding:"required"`
	Role      string    `json:"role" binding:"omitempty,oneof=Admin User"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		CPF:       r.CPF,
		BirthDate: r.BirthDate,
		Role:      r.Role,
	}
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Senha e CPF não são atualizáveis por aqui.
type UpdateUserRequest struct {
	Name      string    `json:"nome" binding:"required,max=100"`
	Email     string    `json:"email" binding:"required,email,max=100"`
	BirthDate time.Time `json:"dataNascimento" binding:"required"`
	Role      string    `json:"role" binding:"omitempty,oneof=Admin User"`
	IsActive  *bool     `json:"isActive"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Name:      r.Name,
		Email:     r.Email,
		BirthDate: r.BirthDate,
		Role:      r.Role,
		IsActive:  r.IsActive,
	}
}

// ChangePasswordRequest representa a requisição de troca de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"senhaAtual" binding:"required"`
	NewPassword     string `json:"novaSenha" binding:"required,min=6,max=255"`
}

// LoginRequest representa a requisição de validação de credenciais
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// UserResponse representa a projeção de um usuário nas respostas.
// A senha nunca é serializada.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	BirthDate time.Time `json:"dataNascimento"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		CPF:       user.CPF.String(),
		BirthDate: user.BirthDate,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
