package main

import (
	"log"

	"github.com/hugohenrick/erp-servicos/internal/config"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := config.Load()

	appLogger := logger.NewLogger(logger.Options{
		Level:       cfg.Log.Level,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.IsDevelopment(),
	})
	defer appLogger.Sync()

	// Criar aplicação
	app, err := NewApp(cfg, appLogger)
	if err != nil {
		appLogger.Error("Erro ao inicializar aplicação", "error", err)
		log.Fatalf("Erro ao inicializar aplicação: %v", err)
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		appLogger.Error("Erro ao executar servidor", "error", err)
	}
}
