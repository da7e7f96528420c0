package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/authz"
	"github.com/investapp/backend/internal/domain/ports"
)

const (
	// CallerHeader é o cabeçalho que carrega o id do usuário chamador.
	// Não há token nem assinatura: o id só vale se resolver para um
	// usuário ativo via IdentityGateway.
	CallerHeader = "X-User-Id"
	// CallerContextKey é a chave da identidade resolvida no contexto
	CallerContextKey = "caller"
)

// CallerMiddleware resolve a identidade do chamador a partir do header
type CallerMiddleware struct {
	identity ports.IdentityGateway
	logger   ports.Logger
}

// NewCallerMiddleware cria um novo CallerMiddleware
func NewCallerMiddleware(identity ports.IdentityGateway, logger ports.Logger) *CallerMiddleware {
	return &CallerMiddleware{
		identity: identity,
		logger:   logger,
	}
}

// Resolve tenta resolver o header de identidade. Header ausente, malformado
// ou que não resolve para um usuário ativo deixa a requisição anônima; as
// operações protegidas negam nesse caso.
func (m *CallerMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(CallerHeader)
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			m.logger.Debug("malformed caller id header", "value", raw)
			c.Next()
			return
		}

		caller, err := m.identity.Resolve(c.Request.Context(), id)
		if err != nil {
			m.logger.Error("failed to resolve caller identity", "caller_id", id, "error", err)
			c.Next()
			return
		}

		if caller != nil {
			c.Set(CallerContextKey, caller)
		}

		c.Next()
	}
}

// CallerFrom extrai a identidade resolvida do contexto.
// Retorna nil para requisições anônimas.
func CallerFrom(c *gin.Context) *authz.Caller {
	value, exists := c.Get(CallerContextKey)
	if !exists {
		return nil
	}

	caller, ok := value.(*authz.Caller)
	if !ok {
		return nil
	}

	return caller
}
