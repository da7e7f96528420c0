package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/handlers/dto"
	"github.com/investapp/backend/internal/services"
)

// AuthHandler lida com a validação de credenciais
type AuthHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(userService *services.UserService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// Login valida email e senha e retorna a projeção do usuário. Não emite
// token: o chamador passa a usar o próprio id no header de identidade.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
