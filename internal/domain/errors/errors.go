package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound           = errors.New("error.user_not_found")
	ErrInvestmentNotFound     = errors.New("error.investment_not_found")
	ErrUserInvestmentNotFound = errors.New("error.user_investment_not_found")
	ErrEmailAlreadyExists     = errors.New("error.email_already_exists")
	ErrCPFAlreadyExists       = errors.New("error.cpf_already_exists")
	ErrInvalidCredentials     = errors.New("error.invalid_credentials")
	ErrForbidden              = errors.New("error.forbidden")
)
