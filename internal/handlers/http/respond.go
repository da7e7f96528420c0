package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/errors"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/domain/valueobjects"
	"github.com/investapp/backend/internal/handlers/dto"
)

// respondError é o ponto único de tradução de erros de domínio para o
// envelope HTTP. Erros não previstos viram 500 genérico, com o detalhe
// apenas no log do servidor.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrInvestmentNotFound),
		errs.Is(err, errors.ErrUserInvestmentNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, err.Error()))

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrCPFAlreadyExists),
		errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(c, http.StatusBadRequest, err.Error(), nil))

	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponse(c))

	case errs.Is(err, valueobjects.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, []dto.FieldError{
			{Field: "email", Message: "must be a valid email address"},
		}))

	case errs.Is(err, valueobjects.ErrInvalidCPF):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, []dto.FieldError{
			{Field: "cpf", Message: "must contain exactly 11 digits"},
		}))

	default:
		logger.Error("unexpected error handling request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
	}
}

// respondReferencedError trata erros de entidade referenciada inexistente
// como violação de regra de negócio (400), não como recurso ausente (404):
// o recurso da rota existe, a referência do corpo é que não resolve.
func respondReferencedError(c *gin.Context, logger ports.Logger, err error) {
	if errs.Is(err, errors.ErrUserNotFound) || errs.Is(err, errors.ErrInvestmentNotFound) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(c, http.StatusBadRequest, err.Error(), nil))
		return
	}
	respondError(c, logger, err)
}

func respondForbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponse(c))
}

// bindJSON valida o corpo da requisição antes de qualquer lógica de
// domínio, enumerando todos os campos violados
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.FieldErrors(err)))
		return false
	}
	return true
}

// parseID extrai e valida um UUID de um parâmetro de rota
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(c, http.StatusBadRequest, "error.invalid_id", nil))
		return uuid.Nil, false
	}
	return id, true
}
