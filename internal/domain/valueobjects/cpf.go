package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCPF = errors.New("invalid cpf format")
)

// CPF é um value object para o documento brasileiro de pessoa física.
// Aceita o valor com ou sem máscara e armazena apenas os 11 dígitos.
type CPF struct {
	value string
}

// NewCPF cria um novo CPF validado
func NewCPF(cpf string) (CPF, error) {
	cpf = strings.TrimSpace(cpf)
	cpf = strings.NewReplacer(".", "", "-", "").Replace(cpf)

	if len(cpf) != 11 {
		return CPF{}, ErrInvalidCPF
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return CPF{}, ErrInvalidCPF
		}
	}

	return CPF{value: cpf}, nil
}

// String retorna os 11 dígitos do CPF
func (c CPF) String() string {
	return c.value
}
