package dto

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse é o envelope de erro da API:
// {statusCode, message, details}
type ErrorResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse cria uma resposta de erro traduzindo a chave da
// mensagem pelo idioma da requisição
func NewErrorResponse(c *gin.Context, status int, messageKey string, details interface{}) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Message:    T(c, messageKey),
		Details:    details,
	}
}

// ValidationErrorResponse cria uma resposta 400 enumerando todos os
// campos violados
func ValidationErrorResponse(c *gin.Context, fieldErrors []FieldError) ErrorResponse {
	var details interface{}
	if len(fieldErrors) > 0 {
		details = fieldErrors
	}
	return NewErrorResponse(c, 400, "error.validation", details)
}

// NotFoundErrorResponse cria uma resposta 404
func NotFoundErrorResponse(c *gin.Context, messageKey string) ErrorResponse {
	return NewErrorResponse(c, 404, messageKey, nil)
}

// ForbiddenErrorResponse cria uma resposta 403
func ForbiddenErrorResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(c, 403, "error.forbidden", nil)
}

// InternalErrorResponse cria uma resposta 500 genérica.
// Nenhum detalhe interno chega ao cliente; o log fica no servidor.
func InternalErrorResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(c, 500, "error.internal", nil)
}
