package http

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/investapp/backend/internal/domain/ports"
	"github.com/investapp/backend/internal/handlers/dto"
	"github.com/investapp/backend/internal/handlers/middleware"
	"github.com/investapp/backend/internal/infrastructure/config"
	"github.com/investapp/backend/internal/infrastructure/i18n"
)

// Handlers agrupa os handlers registrados no roteador
type Handlers struct {
	User           *UserHandler
	Investment     *InvestmentHandler
	UserInvestment *UserInvestmentHandler
	Auth           *AuthHandler
}

// NewRouter monta o roteador Gin com middlewares e rotas da API
func NewRouter(
	cfg *config.Config,
	logger ports.Logger,
	i18nService *i18n.Service,
	caller *middleware.CallerMiddleware,
	handlers Handlers,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidatorTagName()

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
	}))

	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.CallerHeader, "Accept-Language")
	router.Use(cors.New(corsConfig))

	// URL base para montar o header Location das criações
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	router.Use(caller.Resolve())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/login", handlers.Auth.Login)

		users := api.Group("/users")
		{
			users.GET("", handlers.User.ListUsers)
			users.POST("", handlers.User.CreateUser)
			users.GET("/:id", handlers.User.GetUser)
			users.PUT("/:id", handlers.User.UpdateUser)
			users.DELETE("/:id", handlers.User.DeleteUser)
			users.PUT("/:id/password", handlers.User.ChangePassword)

			holdings := users.Group("/:id/investimentos")
			{
				holdings.GET("", handlers.UserInvestment.ListUserInvestments)
				holdings.POST("", handlers.UserInvestment.CreateUserInvestment)
				holdings.GET("/:investmentId", handlers.UserInvestment.GetUserInvestment)
				holdings.PUT("/:investmentId", handlers.UserInvestment.UpdateUserInvestment)
				holdings.DELETE("/:investmentId", handlers.UserInvestment.DeleteUserInvestment)
			}
		}

		investments := api.Group("/investments")
		{
			investments.GET("", handlers.Investment.ListInvestments)
			investments.POST("", handlers.Investment.CreateInvestment)
			investments.GET("/:id", handlers.Investment.GetInvestment)
			investments.PUT("/:id", handlers.Investment.UpdateInvestment)
			investments.DELETE("/:id", handlers.Investment.DeleteInvestment)
		}
	}

	return router
}

// registerValidatorTagName faz o validador reportar os nomes dos campos
// conforme as tags json, para os detalhes de validação baterem com o corpo
// enviado pelo cliente
func registerValidatorTagName() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
