package routes

import (
	"sema-licenca/internal/adapters/http/handlers"
	"sema-licenca/internal/adapters/http/middleware"
	"sema-licenca/internal/adapters/persistence/repositories"
	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/config"
	"sema-licenca/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, rest *postgrest.Client, cfg *config.Config) {
	// Initialize repositories
	pessoaRepo := repositories.NewPessoaRepository(db)
	usuarioRepo := repositories.NewUsuarioRepository(db)

	// Initialize services
	authService := services.NewAuthService(pessoaRepo, usuarioRepo, cfg.Auth.RehashLegacy)
	processoService := services.NewProcessoService(rest)
	pessoaService := services.NewPessoaService(rest)
	aguaService := services.NewConsumoAguaService(rest)
	energiaService := services.NewEnergiaService(rest)
	blockchainService := services.NewBlockchainService(cfg.Blockchain)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	processoHandler := handlers.NewProcessoHandler(processoService)
	pessoaHandler := handlers.NewPessoaHandler(pessoaService)
	aguaHandler := handlers.NewConsumoAguaHandler(aguaService)
	energiaHandler := handlers.NewEnergiaHandler(energiaService)
	blockchainHandler := handlers.NewBlockchainHandler(blockchainService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Legacy auth (direct Postgres, no Supabase)
	app.Post("/auth/login", middleware.AuthRateLimiter(), authHandler.Login)

	// API v1 group - everything here proxies Supabase PostgREST
	apiV1 := app.Group("/api/v1",
		middleware.RequireSupabase(cfg),
		middleware.SupabaseAuth(cfg),
	)

	// Processos
	processos := apiV1.Group("/processos")
	processos.Post("/", processoHandler.Create)
	processos.Put("/:processo_id/dados-gerais", processoHandler.UpsertDadosGerais)
	processos.Post("/:processo_id/localizacoes", processoHandler.AddLocalizacao)
	processos.Get("/:processo_id/wizard-status", processoHandler.GetWizardStatus)
	processos.Post("/:processo_id/submit", processoHandler.Submit)

	// Pessoas
	pessoas := apiV1.Group("/pessoas")
	pessoas.Post("/fisica", pessoaHandler.CreateFisica)
	pessoas.Post("/juridica", pessoaHandler.CreateJuridica)
	pessoas.Post("/estrangeira", pessoaHandler.CreateEstrangeira)
	pessoas.Get("/", pessoaHandler.List)
	pessoas.Get("/:pkpessoa", pessoaHandler.Get)
	pessoas.Put("/:pkpessoa", pessoaHandler.Update)
	pessoas.Delete("/:pkpessoa", pessoaHandler.Delete)

	// Consumo de água (1:1 form per process, processo_id in the body on write)
	agua := apiV1.Group("/consumo-de-agua")
	agua.Post("/", aguaHandler.Upsert)
	agua.Get("/:processo_id", aguaHandler.Get)
	agua.Delete("/:processo_id", aguaHandler.Delete)

	// Uso de recursos e energia (form + fuel list)
	energia := apiV1.Group("/uso-recursos-energia")
	energia.Post("/", energiaHandler.Upsert)
	energia.Get("/:processo_id", energiaHandler.Get)
	energia.Delete("/:processo_id", energiaHandler.Delete)

	// Blockchain relay
	apiV1.Post("/blockchain/register", blockchainHandler.Register)
}
