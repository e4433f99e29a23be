package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Controle-estoque-api/internal/application/analytics"
	"github.com/jhoicas/Controle-estoque-api/internal/application/estoque"
	"github.com/jhoicas/Controle-estoque-api/internal/application/export"
	"github.com/jhoicas/Controle-estoque-api/internal/application/usecase"
	"github.com/jhoicas/Controle-estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Controle-estoque-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Controle-estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Controle-estoque-api/pkg/config"
	"github.com/jhoicas/Controle-estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	movimentacaoUC := usecase.NewMovimentacaoUseCase(movimentacaoRepo)
	estoqueUC := estoque.NewEstoqueUseCase(txRunner, produtoRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	exportUC := export.NewExportUseCase(produtoRepo, xlsx.NewExcelizeGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:      produtoUC,
		MovimentacaoUC: movimentacaoUC,
		EstoqueUC:      estoqueUC,
		DashboardUC:    dashboardUC,
		ExportUC:       exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
