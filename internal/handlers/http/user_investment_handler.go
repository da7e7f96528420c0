package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/authz"
	"github.com/investapp/backend/internal/domain/entities"
	"github.com/investapp/backend/internal/domain/errors"
	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/handlers/dto"
	"github.com/investapp/backend/internal/handlers/middleware"
	"github.com/investapp/backend/internal/services"
)

// UserInvestmentHandler lida com as rotas aninhadas de aportes
// (/api/users/:id/investimentos). Todas as operações são restritas ao
// próprio usuário ou a administradores.
type UserInvestmentHandler struct {
	holdingService *services.UserInvestmentService
	logger         ports.Logger
}

// NewUserInvestmentHandler cria um novo UserInvestmentHandler
func NewUserInvestmentHandler(holdingService *services.UserInvestmentService, logger ports.Logger) *UserInvestmentHandler {
	return &UserInvestmentHandler{
		holdingService: holdingService,
		logger:         logger,
	}
}

// ListUserInvestments lista os aportes do usuário da rota
func (h *UserInvestmentHandler) ListUserInvestments(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, userID) {
		respondForbidden(c)
		return
	}

	holdings, err := h.holdingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondReferencedError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserInvestmentResponses(holdings))
}

// GetUserInvestment busca um aporte do usuário da rota
func (h *UserInvestmentHandler) GetUserInvestment(c *gin.Context) {
	userID, id, ok := h.parseNestedIDs(c)
	if !ok {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, userID) {
		respondForbidden(c)
		return
	}

	holding, ok := h.findOwnedHolding(c, userID, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToUserInvestmentResponse(holding))
}

// CreateUserInvestment cria um aporte para o usuário da rota
func (h *UserInvestmentHandler) CreateUserInvestment(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateUserInvestmentRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, userID) {
		respondForbidden(c)
		return
	}

	holding, err := h.holdingService.CreateUserInvestment(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondReferencedError(c, h.logger, err)
		return
	}

	baseURL := c.GetString("base_url")
	c.Header("Location", baseURL+"/api/users/"+userID.String()+"/investimentos/"+holding.ID.String())
	c.JSON(http.StatusCreated, dto.ToUserInvestmentResponse(holding))
}

// UpdateUserInvestment atualiza um aporte do usuário da rota
func (h *UserInvestmentHandler) UpdateUserInvestment(c *gin.Context) {
	userID, id, ok := h.parseNestedIDs(c)
	if !ok {
		return
	}

	var req dto.UpdateUserInvestmentRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, userID) {
		respondForbidden(c)
		return
	}

	if _, ok := h.findOwnedHolding(c, userID, id); !ok {
		return
	}

	holding, err := h.holdingService.UpdateUserInvestment(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserInvestmentResponse(holding))
}

// DeleteUserInvestment remove logicamente um aporte do usuário da rota
func (h *UserInvestmentHandler) DeleteUserInvestment(c *gin.Context) {
	userID, id, ok := h.parseNestedIDs(c)
	if !ok {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.CanAccess(caller, userID) {
		respondForbidden(c)
		return
	}

	if _, ok := h.findOwnedHolding(c, userID, id); !ok {
		return
	}

	if err := h.holdingService.DeleteUserInvestment(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserInvestmentHandler) parseNestedIDs(c *gin.Context) (userID, id uuid.UUID, ok bool) {
	userID, ok = parseID(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, ok = parseID(c, "investmentId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

// findOwnedHolding carrega o aporte e confere que pertence ao usuário da
// rota. Aporte de outro usuário responde 404, não 403: a rota aninhada só
// enxerga os aportes do próprio dono.
func (h *UserInvestmentHandler) findOwnedHolding(c *gin.Context, userID, id uuid.UUID) (*entities.UserInvestment, bool) {
	holding, err := h.holdingService.GetUserInvestment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return nil, false
	}
	if holding.UserID != userID {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, errors.ErrUserInvestmentNotFound.Error()))
		return nil, false
	}
	return holding, true
}
