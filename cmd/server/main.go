package main

import (
	"context"
	"log/slog"
	"os"

	httpadapter "resume-composer/internal/adapter/http"
	repo "resume-composer/internal/adapter/repository"
	"resume-composer/internal/infrastructure/migration"
	"resume-composer/internal/template"
	"resume-composer/internal/usecase"
	infra "resume-composer/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	pool, err := infra.NewDocumentsPool(ctx)
	if err != nil {
		slog.Warn("documents DB not available, running without persistence", "error", err)
	} else if err := migration.RunMigrations(ctx, pool); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	renderer := infra.NewChromedpRenderer()
	registry := template.Catalog()

	documentsRepo := repo.NewDocumentsRepo(pool)

	lang := os.Getenv("DEFAULT_LANGUAGE")
	if lang == "" {
		lang = "en"
	}
	processor := usecase.NewProcessor(renderer, documentsRepo, registry, lang)

	app := fiber.New()
	h := httpadapter.NewHandler(processor, documentsRepo, registry)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
