package services

import (
	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/valueobjects"
)

func valueEmail(raw string) (valueobjects.Email, error) {
	return valueobjects.NewEmail(raw)
}

// newUserFromInput converte o input de criação em entidade, validando os
// value objects e aplicando o role padrão
func newUserFromInput(input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	cpf, err := valueobjects.NewCPF(input.CPF)
	if err != nil {
		return nil, err
	}

	role := entities.Role(input.Role)
	if input.Role == "" {
		role = entities.RoleUser
	}

	return &entities.User{
		Name:      input.Name,
		Email:     email,
		Password:  input.Password,
		CPF:       cpf,
		BirthDate: input.BirthDate,
		Role:      role,
	}, nil
}
