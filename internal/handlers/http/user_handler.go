package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/investapp/backend/internal/domain/authz"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/handlers/dto"
	"github.com/investapp/backend/internal/handlers/middleware"
	"github.com/investapp/backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lista todos os usuários (apenas Admin)
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !authz.IsAdmin(caller) {
		respondForbidden(c)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID (Admin ou o próprio usuário)
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, user.ID) {
		respondForbidden(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// CreateUser cria um novo usuário (público: registro)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	baseURL := c.GetString("base_url")
	c.Header("Location", baseURL+"/api/users/"+user.ID.String())
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// UpdateUser atualiza um usuário (Admin ou o próprio usuário)
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, id) {
		respondForbidden(c)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove logicamente um usuário (apenas Admin)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.IsAdmin(caller) {
		respondForbidden(c)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangePassword troca a senha de um usuário (Admin ou o próprio usuário)
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, id) {
		respondForbidden(c)
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
