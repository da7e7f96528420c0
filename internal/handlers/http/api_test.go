package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/investapp/backend/internal/handlers/middleware"
	"github.com/investapp/backend/internal/infrastructure/config"
	"github.com/investapp/backend/internal/infrastructure/i18n"
	"github.com/investapp/backend/internal/infrastructure/logging"
	"github.com/investapp/backend/internal/infrastructure/persistence/postgres"
	"github.com/investapp/backend/internal/services"
)

// apiTestEnv sobe a API completa sobre um sqlite em memória, do roteador
// aos repositórios, para exercitar as rotas de ponta a ponta
type apiTestEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newAPITestEnv(t *testing.T) *apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	log := logging.NewSlogLoggerWithWriter(&bytes.Buffer{}, "error", "text")

	i18nService, err := i18n.NewService("pt-BR")
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)
	holdingRepo := postgres.NewUserInvestmentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	userService := services.NewUserService(userRepo, log)
	investmentService := services.NewInvestmentService(investmentRepo, log)
	holdingService := services.NewUserInvestmentService(holdingRepo, userRepo, investmentRepo, uow, log)
	identityService := services.NewIdentityService(userRepo)

	cfg := &config.Config{
		Env:    "test",
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		CORS:   config.CORSConfig{AllowedOrigins: "*"},
	}

	router := NewRouter(cfg, log, i18nService,
		middleware.NewCallerMiddleware(identityService, log),
		Handlers{
			User:           NewUserHandler(userService, log),
			Investment:     NewInvestmentHandler(investmentService, log),
			UserInvestment: NewUserInvestmentHandler(holdingService, log),
			Auth:           NewAuthHandler(userService, log),
		},
	)

	return &apiTestEnv{router: router, db: db}
}

// do executa uma requisição contra o roteador. callerID vazio significa
// requisição anônima.
func (e *apiTestEnv) do(t *testing.T, method, target, callerID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if callerID != "" {
		req.Header.Set(middleware.CallerHeader, callerID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func userPayload(name, email, cpf string) map[string]any {
	return map[string]any{
		"nome":           name,
		"email":          email,
		"senha":          "senha123",
		"cpf":            cpf,
		"dataNascimento": "1990-05-10T00:00:00Z",
	}
}

// createUser registra um usuário pela API e retorna seu id
func (e *apiTestEnv) createUser(t *testing.T, name, email, cpf string) string {
	t.Helper()

	w := e.do(t, "POST", "/api/users", "", userPayload(name, email, cpf))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeBody(t, w)["id"].(string)
}

// createAdmin registra um usuário e o promove a Admin direto no banco,
// já que a API não expõe auto-promoção
func (e *apiTestEnv) createAdmin(t *testing.T, name, email, cpf string) string {
	t.Helper()

	id := e.createUser(t, name, email, cpf)
	err := e.db.Table("users").Where("id = ?", id).Update("role", "Admin").Error
	require.NoError(t, err)
	return id
}

func (e *apiTestEnv) createInvestment(t *testing.T, adminID, name string) string {
	t.Helper()

	w := e.do(t, "POST", "/api/investments", adminID, map[string]any{
		"name":                 name,
		"type":                 "Tesouro Direto",
		"baseValue":            100.0,
		"expectedYieldPercent": 11.5,
		"riskLevel":            "Baixo",
		"description":          "Título público pós-fixado",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeBody(t, w)["id"].(string)
}

func holdingPayload(investmentID string) map[string]any {
	return map[string]any{
		"investmentId":   investmentID,
		"amountInvested": 1000.0,
		"units":          10.0,
		"purchaseDate":   "2024-03-15T00:00:00Z",
		"currentValue":   1050.0,
		"status":         "Ativo",
	}
}

func TestHealth(t *testing.T) {
	env := newAPITestEnv(t)

	w := env.do(t, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserRoutes(t *testing.T) {
	t.Run("registro é público e retorna Location sem a senha", func(t *testing.T) {
		env := newAPITestEnv(t)

		w := env.do(t, "POST", "/api/users", "", userPayload("João Silva", "joao@teste.com", "12345678909"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		require.Contains(t, w.Header().Get("Location"), "/api/users/"+body["id"].(string))
		require.NotContains(t, w.Body.String(), "senha123")
		require.NotContains(t, body, "senha")
		require.NotContains(t, body, "password")
		require.Equal(t, "User", body["role"])
	})

	t.Run("corpo inválido enumera os campos violados", func(t *testing.T) {
		env := newAPITestEnv(t)

		w := env.do(t, "POST", "/api/users", "", map[string]any{
			"nome":  "João",
			"email": "não-é-email",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		require.EqualValues(t, 400, body["statusCode"])
		require.NotEmpty(t, body["details"])
	})

	t.Run("email duplicado retorna 400 com mensagem traduzida", func(t *testing.T) {
		env := newAPITestEnv(t)
		env.createUser(t, "João", "joao@teste.com", "12345678909")

		w := env.do(t, "POST", "/api/users", "", userPayload("Outro", "JOAO@teste.com", "98765432100"))
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		require.Equal(t, "Email já está em uso", body["message"])
	})

	t.Run("listagem exige Admin", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		w := env.do(t, "GET", "/api/users", "", nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, "GET", "/api/users", userID, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.EqualValues(t, 403, decodeBody(t, w)["statusCode"])

		w = env.do(t, "GET", "/api/users", adminID, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("consulta permite Admin ou o próprio usuário", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		otherID := env.createUser(t, "Maria", "maria@teste.com", "11111111111")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		w := env.do(t, "GET", "/api/users/"+userID, userID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, "GET", "/api/users/"+userID, adminID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, "GET", "/api/users/"+userID, otherID, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, "GET", "/api/users/"+userID, "", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("id malformado retorna 400", func(t *testing.T) {
		env := newAPITestEnv(t)
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		w := env.do(t, "GET", "/api/users/nao-e-uuid", adminID, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("id desconhecido retorna 404 traduzido para Admin", func(t *testing.T) {
		env := newAPITestEnv(t)
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		w := env.do(t, "GET", "/api/users/"+uuid.NewString(), adminID, nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		require.EqualValues(t, 404, body["statusCode"])
		require.Equal(t, "Usuário não encontrado", body["message"])
	})

	t.Run("remoção exige Admin e é lógica", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		// O próprio usuário não pode se remover
		w := env.do(t, "DELETE", "/api/users/"+userID, userID, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, "DELETE", "/api/users/"+userID, adminID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, "GET", "/api/users/"+userID, adminID, nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		// A linha permanece no banco, inativa
		var count int64
		require.NoError(t, env.db.Table("users").Where("id = ?", userID).Count(&count).Error)
		require.EqualValues(t, 1, count)

		// Removido não vale mais como identidade
		w = env.do(t, "GET", "/api/users", userID, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("atualização não altera senha nem cpf", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")

		w := env.do(t, "PUT", "/api/users/"+userID, userID, map[string]any{
			"nome":           "João Atualizado",
			"email":          "joao@teste.com",
			"dataNascimento": "1990-05-10T00:00:00Z",
			"cpf":            "00000000000",
			"senha":          "hackeada",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeBody(t, w)
		require.Equal(t, "João Atualizado", body["nome"])
		require.Equal(t, "12345678909", body["cpf"])

		// Login continua com a senha original
		w = env.do(t, "POST", "/api/auth/login", "", map[string]any{
			"email": "joao@teste.com",
			"senha": "senha123",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("troca de senha confere a senha atual", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")

		w := env.do(t, "PUT", "/api/users/"+userID+"/password", userID, map[string]any{
			"senhaAtual": "errada",
			"novaSenha":  "novasenha",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = env.do(t, "PUT", "/api/users/"+userID+"/password", userID, map[string]any{
			"senhaAtual": "senha123",
			"novaSenha":  "novasenha",
		})
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, "POST", "/api/auth/login", "", map[string]any{
			"email": "joao@teste.com",
			"senha": "novasenha",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthRoutes(t *testing.T) {
	t.Run("login valida credenciais", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")

		w := env.do(t, "POST", "/api/auth/login", "", map[string]any{
			"email": "joao@teste.com",
			"senha": "senha123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, userID, decodeBody(t, w)["id"])

		w = env.do(t, "POST", "/api/auth/login", "", map[string]any{
			"email": "joao@teste.com",
			"senha": "errada",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Credenciais inválidas", decodeBody(t, w)["message"])
	})
}

func TestInvestmentRoutes(t *testing.T) {
	t.Run("leitura é pública e escrita exige Admin", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		payload := map[string]any{
			"name":                 "Tesouro Selic 2030",
			"type":                 "Tesouro Direto",
			"baseValue":            100.0,
			"expectedYieldPercent": 11.5,
			"riskLevel":            "Baixo",
		}

		w := env.do(t, "POST", "/api/investments", "", payload)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, "POST", "/api/investments", userID, payload)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, "POST", "/api/investments", adminID, payload)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		investmentID := decodeBody(t, w)["id"].(string)

		// Leitura anônima funciona
		w = env.do(t, "GET", "/api/investments", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, "GET", "/api/investments/"+investmentID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("listagem ordenada por nome", func(t *testing.T) {
		env := newAPITestEnv(t)
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		env.createInvestment(t, adminID, "Tesouro Selic 2030")
		env.createInvestment(t, adminID, "Ações PETR4")

		w := env.do(t, "GET", "/api/investments", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		require.Equal(t, "Ações PETR4", list[0]["name"])
		require.Equal(t, "Tesouro Selic 2030", list[1]["name"])
	})

	t.Run("valores fora da faixa são rejeitados", func(t *testing.T) {
		env := newAPITestEnv(t)
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

		w := env.do(t, "POST", "/api/investments", adminID, map[string]any{
			"name":                 "Inválido",
			"type":                 "Teste",
			"baseValue":            -10.0,
			"expectedYieldPercent": 150.0,
			"riskLevel":            "Baixo",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserInvestmentRoutes(t *testing.T) {
	holdingsPath := func(userID string) string {
		return fmt.Sprintf("/api/users/%s/investimentos", userID)
	}

	t.Run("criação exige o dono ou Admin", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		otherID := env.createUser(t, "Maria", "maria@teste.com", "11111111111")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")
		investmentID := env.createInvestment(t, adminID, "Tesouro Selic 2030")

		w := env.do(t, "POST", holdingsPath(userID), otherID, holdingPayload(investmentID))
		require.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, "POST", holdingsPath(userID), userID, holdingPayload(investmentID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		require.Equal(t, userID, body["userId"])
		require.NotNil(t, body["investment"])
	})

	t.Run("produto inexistente no corpo retorna 400", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")

		w := env.do(t, "POST", holdingsPath(userID), userID, holdingPayload(uuid.NewString()))
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		require.EqualValues(t, 400, body["statusCode"])
		require.Equal(t, "Investimento não encontrado", body["message"])
	})

	t.Run("listagem mais recentes primeiro", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")
		investmentID := env.createInvestment(t, adminID, "Tesouro Selic 2030")

		older := holdingPayload(investmentID)
		older["purchaseDate"] = "2023-01-10T00:00:00Z"
		newer := holdingPayload(investmentID)
		newer["purchaseDate"] = "2024-06-20T00:00:00Z"

		w := env.do(t, "POST", holdingsPath(userID), userID, older)
		require.Equal(t, http.StatusCreated, w.Code)
		w = env.do(t, "POST", holdingsPath(userID), userID, newer)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, "GET", holdingsPath(userID), userID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		require.Equal(t, "2024-06-20T00:00:00Z", list[0]["purchaseDate"])
		require.Equal(t, "2023-01-10T00:00:00Z", list[1]["purchaseDate"])
	})

	t.Run("aporte de outro usuário na rota aninhada retorna 404", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		otherID := env.createUser(t, "Maria", "maria@teste.com", "11111111111")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")
		investmentID := env.createInvestment(t, adminID, "Tesouro Selic 2030")

		w := env.do(t, "POST", holdingsPath(userID), userID, holdingPayload(investmentID))
		require.Equal(t, http.StatusCreated, w.Code)
		holdingID := decodeBody(t, w)["id"].(string)

		// Admin consegue pela rota do dono
		w = env.do(t, "GET", holdingsPath(userID)+"/"+holdingID, adminID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// Pela rota de outro usuário o aporte não existe
		w = env.do(t, "GET", holdingsPath(otherID)+"/"+holdingID, otherID, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("remoção é lógica e some da listagem", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")
		investmentID := env.createInvestment(t, adminID, "Tesouro Selic 2030")

		w := env.do(t, "POST", holdingsPath(userID), userID, holdingPayload(investmentID))
		require.Equal(t, http.StatusCreated, w.Code)
		holdingID := decodeBody(t, w)["id"].(string)

		w = env.do(t, "DELETE", holdingsPath(userID)+"/"+holdingID, userID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, "GET", holdingsPath(userID), userID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Empty(t, list)

		var count int64
		require.NoError(t, env.db.Table("user_investments").Where("id = ?", holdingID).Count(&count).Error)
		require.EqualValues(t, 1, count)
	})

	t.Run("atualização preserva os vínculos", func(t *testing.T) {
		env := newAPITestEnv(t)
		userID := env.createUser(t, "João", "joao@teste.com", "12345678909")
		adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")
		investmentID := env.createInvestment(t, adminID, "Tesouro Selic 2030")

		w := env.do(t, "POST", holdingsPath(userID), userID, holdingPayload(investmentID))
		require.Equal(t, http.StatusCreated, w.Code)
		holdingID := decodeBody(t, w)["id"].(string)

		w = env.do(t, "PUT", holdingsPath(userID)+"/"+holdingID, userID, map[string]any{
			"amountInvested": 2000.0,
			"units":          20.0,
			"purchaseDate":   "2024-03-15T00:00:00Z",
			"currentValue":   2100.0,
			"status":         "Resgatado",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeBody(t, w)
		require.Equal(t, userID, body["userId"])
		require.Equal(t, investmentID, body["investmentId"])
		require.Equal(t, "Resgatado", body["status"])
	})
}

func TestLanguageSelection(t *testing.T) {
	env := newAPITestEnv(t)
	adminID := env.createAdmin(t, "Admin", "admin@teste.com", "98765432100")

	req := httptest.NewRequest("GET", "/api/users/"+uuid.NewString(), nil)
	req.Header.Set(middleware.CallerHeader, adminID)
	req.Header.Set("Accept-Language", "en")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeBody(t, w)["message"])
}
