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

// InvestmentHandler lida com requisições HTTP do catálogo de investimentos.
// Leitura é pública; escrita exige Admin.
type InvestmentHandler struct {
	investmentService *services.InvestmentService
	logger            ports.Logger
}

// NewInvestmentHandler cria um novo InvestmentHandler
func NewInvestmentHandler(investmentService *services.InvestmentService, logger ports.Logger) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		logger:            logger,
	}
}

// ListInvestments lista o catálogo (público)
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	investments, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponses(investments))
}

// GetInvestment busca um produto por ID (público)
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	investment, err := h.investmentService.GetInvestment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// CreateInvestment cria um produto no catálogo (apenas Admin)
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req dto.InvestmentRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.IsAdmin(caller) {
		respondForbidden(c)
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	baseURL := c.GetString("base_url")
	c.Header("Location", baseURL+"/api/investments/"+investment.ID.String())
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// UpdateInvestment atualiza um produto (apenas Admin)
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.InvestmentRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.IsAdmin(caller) {
		respondForbidden(c)
		return
	}

	investment, err := h.investmentService.UpdateInvestment(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// DeleteInvestment remove logicamente um produto (apenas Admin)
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	caller := middleware.CallerFrom(c)
	if !authz.IsAdmin(caller) {
		respondForbidden(c)
		return
	}

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
